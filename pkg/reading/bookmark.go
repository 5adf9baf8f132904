package reading

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookmarkCategory is the closed set of bookmark tags.
type BookmarkCategory string

const (
	CategoryImportant BookmarkCategory = "important"
	CategoryReview    BookmarkCategory = "review"
	CategoryQuestion  BookmarkCategory = "question"
	CategoryReference BookmarkCategory = "reference"
	CategorySummary   BookmarkCategory = "summary"
	CategoryCustom    BookmarkCategory = "custom"
)

// CategoryInfo is the presentation metadata for a category, kept out of the
// domain type itself.
type CategoryInfo struct {
	Label string
	Icon  string
}

var categoryInfos = map[BookmarkCategory]CategoryInfo{
	CategoryImportant: {Label: "Important", Icon: "star"},
	CategoryReview:    {Label: "Review Later", Icon: "refresh"},
	CategoryQuestion:  {Label: "Question", Icon: "help"},
	CategoryReference: {Label: "Reference", Icon: "link"},
	CategorySummary:   {Label: "Summary", Icon: "notes"},
	CategoryCustom:    {Label: "Custom", Icon: "label"},
}

func (c BookmarkCategory) Info() CategoryInfo {
	if info, ok := categoryInfos[c]; ok {
		return info
	}
	return categoryInfos[CategoryCustom]
}

// ParseBookmarkCategory converts a stored enum name back to a category.
func ParseBookmarkCategory(name string) (BookmarkCategory, error) {
	c := BookmarkCategory(name)
	if _, ok := categoryInfos[c]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Bookmark tags a chapter section with a category and an optional note.
// LastModified stays nil until the first note/category update after creation.
type Bookmark struct {
	ID            string
	TextbookID    string
	ChapterNumber int
	SectionNumber int
	SectionTitle  string
	Note          string
	Category      BookmarkCategory
	CreatedAt     time.Time
	LastModified  *time.Time
}

// NewBookmark creates a bookmark with a generated id. A non-empty initial
// note counts as a modification, so LastModified is set in that case.
func NewBookmark(textbookID string, chapterNumber, sectionNumber int, sectionTitle, note string, category BookmarkCategory) Bookmark {
	if category == "" {
		category = CategoryImportant
	}
	now := time.Now()
	b := Bookmark{
		ID:            "bm_" + uuid.NewString(),
		TextbookID:    textbookID,
		ChapterNumber: chapterNumber,
		SectionNumber: sectionNumber,
		SectionTitle:  sectionTitle,
		Note:          note,
		Category:      category,
		CreatedAt:     now,
	}
	if note != "" {
		b.LastModified = &now
	}
	return b
}

func (b Bookmark) UpdateNote(note string) Bookmark {
	now := time.Now()
	b.Note = note
	b.LastModified = &now
	return b
}

func (b Bookmark) UpdateCategory(category BookmarkCategory) Bookmark {
	now := time.Now()
	b.Category = category
	b.LastModified = &now
	return b
}

func (b Bookmark) UpdateNoteAndCategory(note string, category BookmarkCategory) Bookmark {
	now := time.Now()
	b.Note = note
	b.Category = category
	b.LastModified = &now
	return b
}

// NotePreview renders the note for list views, truncated like highlight
// previews. An empty note renders as "No note".
func (b Bookmark) NotePreview(maxLength int) string {
	if b.Note == "" {
		return "No note"
	}
	return truncateWithEllipsis(b.Note, maxLength)
}

// DisplayText is the note preview when a note exists, else the section title.
func (b Bookmark) DisplayText() string {
	if b.Note != "" {
		return b.NotePreview(50)
	}
	return b.SectionTitle
}

func (b Bookmark) IsSameSection(other Bookmark) bool {
	return b.TextbookID == other.TextbookID &&
		b.ChapterNumber == other.ChapterNumber &&
		b.SectionNumber == other.SectionNumber
}

// IsValid is advisory: callers check it before persisting, it never blocks
// construction.
func (b Bookmark) IsValid() bool {
	return b.ID != "" &&
		b.TextbookID != "" &&
		b.SectionTitle != "" &&
		b.ChapterNumber >= 1 &&
		b.SectionNumber >= 0 &&
		!b.CreatedAt.After(time.Now())
}
