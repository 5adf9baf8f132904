package specification

import "gorm.io/gorm"

// ByTextbookChapter pins a snapshot query to one (textbook, chapter) pair,
// the natural key of the reading state handoff.
type ByTextbookChapter struct {
	TextbookID    string
	ChapterNumber int
}

func (s ByTextbookChapter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("textbook_id = ? AND chapter_number = ?", s.TextbookID, s.ChapterNumber)
}

// ByTextbook filters snapshots across every chapter of one textbook.
type ByTextbook struct {
	TextbookID string
}

func (s ByTextbook) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("textbook_id = ?", s.TextbookID)
}
