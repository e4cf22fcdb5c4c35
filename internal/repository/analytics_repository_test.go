package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/faq-portal/internal/model"
)

func TestUserStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery("FROM users GROUP BY role").
		WillReturnRows(sqlmock.NewRows([]string{"role", "count"}).
			AddRow("User", 8).
			AddRow("Admin", 2))

	stats, err := repo.UserStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, map[string]int64{"User": 8, "Admin": 2}, stats.UsersByRole)
}

func TestUserStats_QueryFailureAbortsWhole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery("FROM users GROUP BY role").
		WillReturnError(assert.AnError)

	_, err := repo.UserStats(context.Background())
	assert.Error(t, err)
}

func TestFaqStats_CategoriesAndTags(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	// Categories {A, A, B} -> {A:2, B:1}.
	mock.ExpectQuery("FROM faqs GROUP BY category").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("A", 2).
			AddRow("B", 1))

	// Tag lists ["x","y"] and ["x"] -> x:2, y:1, descending.
	mock.ExpectQuery("FROM faq_tags GROUP BY tag ORDER BY cnt DESC").
		WillReturnRows(sqlmock.NewRows([]string{"tag", "cnt"}).
			AddRow("x", 2).
			AddRow("y", 1))

	now := time.Now().UTC()
	mock.ExpectQuery("FROM faqs ORDER BY created_at DESC LIMIT").
		WithArgs(recentFaqLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}).
			AddRow(2, "newest", "A", "d", 0, now, nil).
			AddRow(1, "older", "B", "d", 0, now.Add(-time.Hour), nil))
	mock.ExpectQuery("SELECT faq_id, tag FROM faq_tags").
		WillReturnRows(sqlmock.NewRows([]string{"faq_id", "tag"}).
			AddRow(2, "x").
			AddRow(1, "x").
			AddRow(1, "y"))

	stats, err := repo.FaqStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalFaqs)
	assert.Equal(t, map[string]int64{"A": 2, "B": 1}, stats.FaqsByCategory)
	assert.Equal(t, []model.TagCount{{Tag: "x", Count: 2}, {Tag: "y", Count: 1}}, stats.TopTags)
	require.Len(t, stats.RecentFaqs, 2)
	assert.Equal(t, "newest", stats.RecentFaqs[0].Title)
	assert.Equal(t, []string{"x", "y"}, stats.RecentFaqs[1].Tags)
}

func TestFaqStats_NoPartialReport(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery("FROM faqs GROUP BY category").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).AddRow("A", 2))
	mock.ExpectQuery("FROM faq_tags GROUP BY tag ORDER BY cnt DESC").
		WillReturnError(assert.AnError)

	// A failing tag query fails the whole aggregate even though the
	// category pass succeeded.
	_, err := repo.FaqStats(context.Background())
	assert.Error(t, err)
}
