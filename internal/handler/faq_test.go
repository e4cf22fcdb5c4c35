package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/faq-portal/internal/repository"
)

func newFaqHandler(t *testing.T) (*FaqHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewFaqHandler(repository.NewFaqRepo(db), repository.NewAnalyticsRepo(db)), mock
}

func TestFaqList(t *testing.T) {
	h, mock := newFaqHandler(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM faqs ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}).
			AddRow(1, "How?", "General", "Like so.", 0, now, nil))
	mock.ExpectQuery("SELECT faq_id, tag FROM faq_tags").
		WillReturnRows(sqlmock.NewRows([]string{"faq_id", "tag"}))

	c, rec := jsonCtx(t, http.MethodGet, "/faqs", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"How?"`)
	assert.Contains(t, rec.Body.String(), `"tags":[]`)
}

func TestFaqGetByID_NotFound(t *testing.T) {
	h, mock := newFaqHandler(t)

	mock.ExpectQuery("FROM faqs WHERE id=").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}))

	c, rec := jsonCtx(t, http.MethodGet, "/faqs/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestFaqAnalytics_ResponseShape(t *testing.T) {
	h, mock := newFaqHandler(t)

	mock.ExpectQuery("FROM faqs GROUP BY category").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("A", 2).
			AddRow("B", 1))
	mock.ExpectQuery("FROM faq_tags GROUP BY tag ORDER BY cnt DESC").
		WillReturnRows(sqlmock.NewRows([]string{"tag", "cnt"}).
			AddRow("x", 2).
			AddRow("y", 1))
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM faqs ORDER BY created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}).
			AddRow(3, "newest", "A", "d", 0, now, nil))
	mock.ExpectQuery("SELECT faq_id, tag FROM faq_tags").
		WillReturnRows(sqlmock.NewRows([]string{"faq_id", "tag"}).AddRow(3, "x"))

	c, rec := jsonCtx(t, http.MethodGet, "/faqs/analytics", "")
	require.NoError(t, h.Analytics(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"totalFaqs":3`)
	assert.Contains(t, body, `"faqsByCategory":{"A":2,"B":1}`)
	assert.Contains(t, body, `"topTags":[{"tag":"x","count":2},{"tag":"y","count":1}]`)
	assert.Contains(t, body, `"mostViewedFaqs":[]`)
	assert.Contains(t, body, `"title":"newest"`)
}

func TestFaqAnalytics_Unavailable(t *testing.T) {
	h, mock := newFaqHandler(t)

	mock.ExpectQuery("FROM faqs GROUP BY category").
		WillReturnError(assert.AnError)

	c, rec := jsonCtx(t, http.MethodGet, "/faqs/analytics", "")
	require.NoError(t, h.Analytics(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AGGREGATION_UNAVAILABLE")
}

func TestFaqCreate_Validation(t *testing.T) {
	h, _ := newFaqHandler(t)

	c, rec := jsonCtx(t, http.MethodPost, "/faqs", `{"title":"","category":"A","description":"d"}`)
	asUser(c, 2)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}
