package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/faq-portal/internal/queue"
	"github.com/iliyamo/faq-portal/internal/repository"
	queue_publisher "github.com/iliyamo/faq-portal/internal/service"
)

// BookmarkHandler serves the user's bookmark relation: list, add and
// remove. Both mutations are idempotent and map to single atomic
// statements in the repository, so concurrent requests for the same
// (user, faq) pair cannot duplicate an entry.
type BookmarkHandler struct {
	Bookmarks *repository.BookmarkRepo
}

func NewBookmarkHandler(b *repository.BookmarkRepo) *BookmarkHandler {
	return &BookmarkHandler{Bookmarks: b}
}

type addBookmarkReq struct {
	FaqID uint64 `json:"faqId"`
}

// List returns the FAQ entries currently bookmarked by the caller.
// Ids that no longer resolve to an existing entry are omitted.
func (h *BookmarkHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, KindUnauthenticated, "unauthenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	faqs, err := h.Bookmarks.ListFaqs(ctx, uid)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "load bookmarks failed")
	}
	return c.JSON(http.StatusOK, toFaqResps(faqs))
}

// Add bookmarks a FAQ id for the caller. Re-adding an already
// bookmarked id is a no-op that still succeeds. The id is not checked
// against the FAQ collection.
func (h *BookmarkHandler) Add(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, KindUnauthenticated, "unauthenticated")
	}
	var req addBookmarkReq
	if err := c.Bind(&req); err != nil || req.FaqID == 0 {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "faqId required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Bookmarks.Add(ctx, uid, req.FaqID); err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "bookmark failed")
	}

	// Fire-and-forget: a lost event never fails the request.
	ev := queue.NewActivityEvent(queue.TypeBookmarkAdded, uid, req.FaqID, "")
	go func() { _ = queue_publisher.PublishActivity(context.Background(), ev) }()

	return c.JSON(http.StatusOK, echo.Map{"message": "Bookmarked!"})
}

// Remove deletes a bookmark by FAQ id. Removing an id that was never
// bookmarked still succeeds.
func (h *BookmarkHandler) Remove(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, KindUnauthenticated, "unauthenticated")
	}
	faqID, err := strconv.ParseUint(c.Param("faqId"), 10, 64)
	if err != nil || faqID == 0 {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid faqId")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Bookmarks.Remove(ctx, uid, faqID); err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "remove bookmark failed")
	}

	ev := queue.NewActivityEvent(queue.TypeBookmarkRemoved, uid, faqID, "")
	go func() { _ = queue_publisher.PublishActivity(context.Background(), ev) }()

	return c.JSON(http.StatusOK, echo.Map{"message": "Bookmark removed!"})
}
