package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // SQL database interactions
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/faq-portal/internal/config"     // app configuration
	"github.com/iliyamo/faq-portal/internal/model"      // role constants
	"github.com/iliyamo/faq-portal/internal/repository" // DB repositories
	"github.com/iliyamo/faq-portal/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth, profile and bookmark-aware
// endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Users     *repository.UserRepo
	Bookmarks *repository.BookmarkRepo
	Stats     *repository.AnalyticsRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, b *repository.BookmarkRepo, s *repository.AnalyticsRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Bookmarks: b, Stats: s}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // User | Admin
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
type authResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// Register: create user and return a session token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "username/email/password required")
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = model.RoleUser
	}
	// The role set is closed and case-sensitive; anything else is a bad request.
	if !model.ValidRole(role) {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "role must be User or Admin")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrIdentityExists {
			return errJSON(c, http.StatusBadRequest, KindDuplicateIdentity, "username or email already exists")
		}
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "create user failed")
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, role, h.Cfg.TokenTTLHours)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "issue token failed")
	}

	return c.JSON(http.StatusCreated, authResp{
		Token: token.Token,
		User:  userPart{ID: uid, Email: req.Email, Username: req.Username, Role: role},
	})
}

// Login: verify credentials and return a fresh token. Unknown username
// and wrong password produce the same response on purpose.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "username/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusUnauthorized, KindInvalidCredentials, "invalid credentials")
		}
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "query failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return errJSON(c, http.StatusUnauthorized, KindInvalidCredentials, "invalid credentials")
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.TokenTTLHours)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "issue token failed")
	}

	return c.JSON(http.StatusOK, authResp{
		Token: token.Token,
		User:  userPart{ID: u.ID, Email: u.Email, Username: u.Username, Role: u.Role},
	})
}

// Me returns the authenticated user's profile with the bookmarked
// entries resolved to full FAQ records.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, KindUnauthenticated, "unauthenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusNotFound, KindNotFound, "user not found")
		}
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "load user failed")
	}
	faqs, err := h.Bookmarks.ListFaqs(ctx, uid)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "load bookmarks failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"bookmarks": toFaqResps(faqs),
	})
}

// UserAnalytics is Admin-only: total user count plus a per-role
// breakdown, computed fresh on every call.
func (h *AuthHandler) UserAnalytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	stats, err := h.Stats.UserStats(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindAggregationUnavailable, "analytics unavailable")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"totalUsers":  stats.TotalUsers,
		"usersByRole": stats.UsersByRole,
	})
}
