package model

import "time"

// Faq represents a knowledge-base entry as stored in the `faqs`
// table. Tags live in the `faq_tags` child table as an ordered list
// and are loaded alongside the row by the repository.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – question title.
//  Category    – free-form category name used for grouping.
//  Description – answer body.
//  Tags        – ordered tag list from faq_tags (position ASC).
//  CreatedBy   – id of the admin who created the entry; zero when unknown.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp (nil until first update).
type Faq struct {
	ID          uint64     // faqs.id
	Title       string     // faqs.title
	Category    string     // faqs.category
	Description string     // faqs.description
	Tags        []string   // faq_tags.tag ordered by position
	CreatedBy   uint64     // faqs.created_by
	CreatedAt   time.Time  // faqs.created_at
	UpdatedAt   *time.Time // faqs.updated_at (nullable)
}

// TagCount is one entry of the top-tags sequence: a tag and how many
// FAQ entries carry it. The sequence is ordered by descending count.
type TagCount struct {
	Tag   string
	Count int64
}

// FaqStats is the aggregate returned by the FAQ analytics query.
// All numbers are computed fresh on every call; there is no cached
// or materialized view behind them.
type FaqStats struct {
	TotalFaqs      int64
	FaqsByCategory map[string]int64
	TopTags        []TagCount
	RecentFaqs     []Faq
}
