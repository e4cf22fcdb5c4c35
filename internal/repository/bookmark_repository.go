package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/faq-portal/internal/model"
)

// BookmarkRepo maintains the many-to-many relation between users and
// FAQ entries. Rows live in the 'bookmarks' table keyed by
// (user_id, faq_id), so both add and remove are single atomic
// statements and two racing requests for the same pair cannot
// duplicate an entry.
type BookmarkRepo struct{ DB *sql.DB }

func NewBookmarkRepo(db *sql.DB) *BookmarkRepo { return &BookmarkRepo{DB: db} }

// Add records that the user bookmarked the FAQ. INSERT IGNORE makes
// the call idempotent: re-adding an existing pair is a no-op. The faq
// id is treated as an opaque reference and is not checked against the
// faqs table.
func (r *BookmarkRepo) Add(ctx context.Context, userID, faqID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO bookmarks (user_id, faq_id) VALUES (?,?)",
		userID, faqID)
	return err
}

// Remove deletes the pair if present; removing an absent pair succeeds.
func (r *BookmarkRepo) Remove(ctx context.Context, userID, faqID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE user_id=? AND faq_id=?",
		userID, faqID)
	return err
}

// ListFaqs resolves the user's bookmark set against the faqs table.
// The inner join silently drops ids that no longer resolve to an
// existing FAQ, so dangling references never surface to callers.
func (r *BookmarkRepo) ListFaqs(ctx context.Context, userID uint64) ([]model.Faq, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT f.id, f.title, f.category, f.description, f.created_by, f.created_at, f.updated_at
		 FROM bookmarks b
		 INNER JOIN faqs f ON f.id = b.faq_id
		 WHERE b.user_id = ?
		 ORDER BY b.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs, err := scanFaqs(rows)
	if err != nil {
		return nil, err
	}
	if err := attachTags(ctx, r.DB, faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}
