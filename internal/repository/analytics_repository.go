package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/faq-portal/internal/model"
)

// recentFaqLimit caps the recent-entries list in FAQ analytics.
const recentFaqLimit = 5

// AnalyticsRepo computes read-only summary statistics over the user
// and FAQ collections. Every call runs fresh queries; nothing is
// cached or materialized. Any query failure aborts the whole
// aggregate so callers never see partial numbers.
type AnalyticsRepo struct{ DB *sql.DB }

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{DB: db} }

// UserStats returns the total user count and a per-role breakdown.
func (r *AnalyticsRepo) UserStats(ctx context.Context) (model.UserStats, error) {
	stats := model.UserStats{UsersByRole: map[string]int64{}}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return model.UserStats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err := rows.Scan(&role, &count); err != nil {
			return model.UserStats{}, err
		}
		stats.UsersByRole[role] = count
		stats.TotalUsers += count
	}
	if err := rows.Err(); err != nil {
		return model.UserStats{}, err
	}
	return stats, nil
}

// FaqStats returns the FAQ aggregates: total count, per-category
// breakdown, tags ordered by descending occurrence and the five most
// recently created entries.
func (r *AnalyticsRepo) FaqStats(ctx context.Context) (model.FaqStats, error) {
	stats := model.FaqStats{
		FaqsByCategory: map[string]int64{},
		TopTags:        []model.TagCount{},
		RecentFaqs:     []model.Faq{},
	}

	catRows, err := r.DB.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM faqs GROUP BY category")
	if err != nil {
		return model.FaqStats{}, err
	}
	defer catRows.Close()
	for catRows.Next() {
		var (
			category string
			count    int64
		)
		if err := catRows.Scan(&category, &count); err != nil {
			return model.FaqStats{}, err
		}
		stats.FaqsByCategory[category] = count
		stats.TotalFaqs += count
	}
	if err := catRows.Err(); err != nil {
		return model.FaqStats{}, err
	}

	// Tag occurrences across every entry's tag list, busiest first.
	// Order within equal counts is whatever the database returns.
	tagRows, err := r.DB.QueryContext(ctx,
		"SELECT tag, COUNT(*) AS cnt FROM faq_tags GROUP BY tag ORDER BY cnt DESC")
	if err != nil {
		return model.FaqStats{}, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tc model.TagCount
		if err := tagRows.Scan(&tc.Tag, &tc.Count); err != nil {
			return model.FaqStats{}, err
		}
		stats.TopTags = append(stats.TopTags, tc)
	}
	if err := tagRows.Err(); err != nil {
		return model.FaqStats{}, err
	}

	recentRows, err := r.DB.QueryContext(ctx,
		`SELECT id,title,category,description,created_by,created_at,updated_at
		 FROM faqs ORDER BY created_at DESC LIMIT ?`, recentFaqLimit)
	if err != nil {
		return model.FaqStats{}, err
	}
	defer recentRows.Close()
	recent, err := scanFaqs(recentRows)
	if err != nil {
		return model.FaqStats{}, err
	}
	if err := attachTags(ctx, r.DB, recent); err != nil {
		return model.FaqStats{}, err
	}
	stats.RecentFaqs = recent

	return stats, nil
}
