package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/faq-portal/internal/model"
)

// FaqRepo persists FAQ entries. The ordered tag list lives in the
// 'faq_tags' child table and is rewritten together with the row inside
// a transaction on create and update.
type FaqRepo struct{ DB *sql.DB }

func NewFaqRepo(db *sql.DB) *FaqRepo { return &FaqRepo{DB: db} }

// Create inserts the entry and its tags and returns the stored row.
func (r *FaqRepo) Create(ctx context.Context, f model.Faq) (model.Faq, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Faq{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO faqs (title, category, description, created_by) VALUES (?,?,?,?)",
		f.Title, f.Category, f.Description, f.CreatedBy)
	if err != nil {
		return model.Faq{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Faq{}, err
	}
	if err := insertTags(ctx, tx, uint64(id), f.Tags); err != nil {
		return model.Faq{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Faq{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces title, category, description and the tag list, and
// stamps updated_at. Returns ErrNotFound when the row is gone.
func (r *FaqRepo) Update(ctx context.Context, f model.Faq) (model.Faq, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Faq{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"UPDATE faqs SET title=?, category=?, description=?, updated_at=NOW() WHERE id=?",
		f.Title, f.Category, f.Description, f.ID)
	if err != nil {
		return model.Faq{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Faq{}, err
	}
	if n == 0 {
		// The UPDATE matches zero rows both when the id is absent and
		// when nothing changed; distinguish with a lookup.
		var exists uint64
		if err := tx.QueryRowContext(ctx, "SELECT id FROM faqs WHERE id=? LIMIT 1", f.ID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return model.Faq{}, ErrNotFound
			}
			return model.Faq{}, err
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM faq_tags WHERE faq_id=?", f.ID); err != nil {
		return model.Faq{}, err
	}
	if err := insertTags(ctx, tx, f.ID, f.Tags); err != nil {
		return model.Faq{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Faq{}, err
	}
	return r.GetByID(ctx, f.ID)
}

// Delete removes the entry; tags go with it via ON DELETE CASCADE.
// Deleting an absent id succeeds. Bookmarks pointing at the id are
// left in place and filtered out at read time.
func (r *FaqRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM faqs WHERE id=?", id)
	return err
}

// GetByID fetches a single entry with its tags, or ErrNotFound.
func (r *FaqRepo) GetByID(ctx context.Context, id uint64) (model.Faq, error) {
	var f model.Faq
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,category,description,created_by,created_at,updated_at FROM faqs WHERE id=? LIMIT 1",
		id).Scan(&f.ID, &f.Title, &f.Category, &f.Description, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Faq{}, ErrNotFound
		}
		return model.Faq{}, err
	}
	faqs := []model.Faq{f}
	if err := attachTags(ctx, r.DB, faqs); err != nil {
		return model.Faq{}, err
	}
	return faqs[0], nil
}

// Search lists entries newest first. A non-empty query filters by
// substring match over title, description or any tag.
func (r *FaqRepo) Search(ctx context.Context, query string) ([]model.Faq, error) {
	var (
		rows *sql.Rows
		err  error
	)
	query = strings.TrimSpace(query)
	if query == "" {
		rows, err = r.DB.QueryContext(ctx,
			`SELECT id,title,category,description,created_by,created_at,updated_at
			 FROM faqs ORDER BY created_at DESC`)
	} else {
		like := "%" + query + "%"
		rows, err = r.DB.QueryContext(ctx,
			`SELECT DISTINCT f.id,f.title,f.category,f.description,f.created_by,f.created_at,f.updated_at
			 FROM faqs f
			 LEFT JOIN faq_tags t ON t.faq_id = f.id
			 WHERE f.title LIKE ? OR f.description LIKE ? OR t.tag LIKE ?
			 ORDER BY f.created_at DESC`,
			like, like, like)
	}
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

// scanFaqs drains a result set whose columns match the faq select list.
func scanFaqs(rows *sql.Rows) ([]model.Faq, error) {
	faqs := make([]model.Faq, 0)
	for rows.Next() {
		var f model.Faq
		if err := rows.Scan(&f.ID, &f.Title, &f.Category, &f.Description, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// attachTags loads the ordered tag lists for every faq in the slice
// with one IN query and fills the Tags fields in place.
func attachTags(ctx context.Context, db *sql.DB, faqs []model.Faq) error {
	if len(faqs) == 0 {
		return nil
	}
	idx := make(map[uint64]int, len(faqs))
	args := make([]interface{}, 0, len(faqs))
	ph := make([]string, 0, len(faqs))
	for i := range faqs {
		faqs[i].Tags = []string{}
		idx[faqs[i].ID] = i
		args = append(args, faqs[i].ID)
		ph = append(ph, "?")
	}
	rows, err := db.QueryContext(ctx,
		"SELECT faq_id, tag FROM faq_tags WHERE faq_id IN ("+strings.Join(ph, ",")+") ORDER BY faq_id, position",
		args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			faqID uint64
			tag   string
		)
		if err := rows.Scan(&faqID, &tag); err != nil {
			return err
		}
		if i, ok := idx[faqID]; ok {
			faqs[i].Tags = append(faqs[i].Tags, tag)
		}
	}
	return rows.Err()
}

// insertTags writes the ordered tag list for a faq inside the given tx.
func insertTags(ctx context.Context, tx *sql.Tx, faqID uint64, tags []string) error {
	for i, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO faq_tags (faq_id, position, tag) VALUES (?,?,?)",
			faqID, i, tag); err != nil {
			return err
		}
	}
	return nil
}
