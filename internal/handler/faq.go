package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/faq-portal/internal/model"
	"github.com/iliyamo/faq-portal/internal/queue"
	"github.com/iliyamo/faq-portal/internal/repository"
	queue_publisher "github.com/iliyamo/faq-portal/internal/service"
)

// FaqHandler serves the FAQ collection: public browse/search plus
// Admin-only create, update, delete and analytics.
type FaqHandler struct {
	Faqs  *repository.FaqRepo
	Stats *repository.AnalyticsRepo
}

func NewFaqHandler(f *repository.FaqRepo, s *repository.AnalyticsRepo) *FaqHandler {
	return &FaqHandler{Faqs: f, Stats: s}
}

type faqReq struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type tagCountPart struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// List returns all entries newest first; ?search= filters by substring
// over title, description and tags.
func (h *FaqHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	faqs, err := h.Faqs.Search(ctx, c.QueryParam("search"))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "load faqs failed")
	}
	return c.JSON(http.StatusOK, toFaqResps(faqs))
}

// GetByID returns a single entry or 404.
func (h *FaqHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid faq id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	f, err := h.Faqs.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusNotFound, KindNotFound, "faq not found")
		}
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "load faq failed")
	}
	return c.JSON(http.StatusOK, toFaqResp(f))
}

// Create inserts a new entry (Admin only) and publishes an activity event.
func (h *FaqHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, KindUnauthenticated, "unauthenticated")
	}
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	if req.Title == "" || req.Category == "" || strings.TrimSpace(req.Description) == "" {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "title/category/description required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	f, err := h.Faqs.Create(ctx, model.Faq{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
		CreatedBy:   uid,
	})
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "create faq failed")
	}

	ev := queue.NewActivityEvent(queue.TypeFaqCreated, uid, f.ID, f.Title)
	go func() { _ = queue_publisher.PublishActivity(context.Background(), ev) }()

	return c.JSON(http.StatusCreated, toFaqResp(f))
}

// Update replaces an entry's fields and tag list (Admin only).
func (h *FaqHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid faq id")
	}
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	if req.Title == "" || req.Category == "" || strings.TrimSpace(req.Description) == "" {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "title/category/description required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	f, err := h.Faqs.Update(ctx, model.Faq{
		ID:          id,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusNotFound, KindNotFound, "faq not found")
		}
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "update faq failed")
	}
	return c.JSON(http.StatusOK, toFaqResp(f))
}

// Delete removes an entry (Admin only). Bookmarks pointing at the id
// are left alone; reads filter them out.
func (h *FaqHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return errJSON(c, http.StatusBadRequest, KindInvalidRequest, "invalid faq id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Faqs.Delete(ctx, id); err != nil {
		return errJSON(c, http.StatusInternalServerError, KindStoreUnavailable, "delete faq failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "FAQ deleted successfully"})
}

// Analytics is Admin-only: totals, category breakdown, tag frequency
// and the most recent entries, computed fresh on every call. Any read
// failure aborts the whole report; partial numbers are never returned.
func (h *FaqHandler) Analytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	stats, err := h.Stats.FaqStats(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, KindAggregationUnavailable, "analytics unavailable")
	}

	topTags := make([]tagCountPart, 0, len(stats.TopTags))
	for _, tc := range stats.TopTags {
		topTags = append(topTags, tagCountPart{Tag: tc.Tag, Count: tc.Count})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalFaqs":      stats.TotalFaqs,
		"faqsByCategory": stats.FaqsByCategory,
		"topTags":        topTags,
		// No views field exists; kept for response-shape compatibility.
		"mostViewedFaqs": []faqResp{},
		"recentFaqs":     toFaqResps(stats.RecentFaqs),
	})
}
