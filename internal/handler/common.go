package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types
	"time"    // time provides the DB call timeout constant

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/faq-portal/internal/model" // model holds repository row types
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// Stable machine-readable error kinds carried in every error response
// next to a human message. Clients switch on the kind, never on the
// message text.
const (
	KindInvalidRequest         = "INVALID_REQUEST"
	KindDuplicateIdentity      = "DUPLICATE_IDENTITY"
	KindInvalidCredentials     = "INVALID_CREDENTIALS"
	KindUnauthenticated        = "UNAUTHENTICATED"
	KindNotFound               = "NOT_FOUND"
	KindAggregationUnavailable = "AGGREGATION_UNAVAILABLE"
	KindStoreUnavailable       = "STORE_UNAVAILABLE"
)

// errJSON writes the error envelope: {"error": kind, "message": msg}.
// No stack traces or internal identifiers ever go out this way.
func errJSON(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, echo.Map{"error": kind, "message": message})
}

// getUserID extracts the user_id set by the JWT middleware from
// echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// faqResp is the outward JSON shape of a FAQ entry, shared by the
// faq, bookmark and auth handlers.
type faqResp struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	CreatedBy   uint64     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func toFaqResp(f model.Faq) faqResp {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return faqResp{
		ID:          f.ID,
		Title:       f.Title,
		Category:    f.Category,
		Description: f.Description,
		Tags:        tags,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFaqResps(faqs []model.Faq) []faqResp {
	out := make([]faqResp, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, toFaqResp(f))
	}
	return out
}
