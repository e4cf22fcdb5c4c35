package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkAdd_UsesSingleConditionalInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	// One atomic statement, no read-modify-write pair.
	mock.ExpectExec("INSERT IGNORE INTO bookmarks").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(context.Background(), 1, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkAdd_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	mock.ExpectExec("INSERT IGNORE INTO bookmarks").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// The second add matches an existing row: zero rows affected, still success.
	mock.ExpectExec("INSERT IGNORE INTO bookmarks").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Add(context.Background(), 1, 7))
	require.NoError(t, repo.Add(context.Background(), 1, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRemove_AbsentEntrySucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	mock.ExpectExec("DELETE FROM bookmarks").
		WithArgs(uint64(1), uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Remove(context.Background(), 1, 99))
}

func TestBookmarkListFaqs_ResolvesAndOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	now := time.Now().UTC()
	faqRows := sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}).
		AddRow(7, "How do I reset my password?", "Account", "Use the reset link.", 1, now, nil).
		AddRow(3, "What is the refund policy?", "Billing", "30 days.", 1, now.Add(-time.Hour), nil)

	// Dangling faq ids never appear here: the inner join drops them.
	mock.ExpectQuery("INNER JOIN faqs f ON f.id = b.faq_id").
		WithArgs(uint64(1)).
		WillReturnRows(faqRows)

	tagRows := sqlmock.NewRows([]string{"faq_id", "tag"}).
		AddRow(7, "password").
		AddRow(7, "account").
		AddRow(3, "billing")
	mock.ExpectQuery("SELECT faq_id, tag FROM faq_tags").
		WillReturnRows(tagRows)

	faqs, err := repo.ListFaqs(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, uint64(7), faqs[0].ID)
	assert.Equal(t, []string{"password", "account"}, faqs[0].Tags)
	assert.Equal(t, []string{"billing"}, faqs[1].Tags)
}

func TestBookmarkListFaqs_EmptySet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	mock.ExpectQuery("INNER JOIN faqs f ON f.id = b.faq_id").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "description", "created_by", "created_at", "updated_at"}))

	faqs, err := repo.ListFaqs(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, faqs)
}
