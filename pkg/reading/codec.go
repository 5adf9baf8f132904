package reading

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire format for the persistence handoff: snake_case keys, ISO-8601
// timestamps, durations as integer milliseconds. The round trip is lossless
// for every field, nested lists included.

type sectionRecord struct {
	SectionNumber int      `json:"section_number"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	KeyTerms      []string `json:"key_terms"`
	IsCompleted   bool     `json:"is_completed"`
	CompletedAt   *string  `json:"completed_at"`
}

type highlightRecord struct {
	ID              string `json:"id"`
	TextbookID      string `json:"textbook_id"`
	ChapterNumber   int    `json:"chapter_number"`
	SectionNumber   int    `json:"section_number"`
	HighlightedText string `json:"highlighted_text"`
	StartOffset     int    `json:"start_offset"`
	EndOffset       int    `json:"end_offset"`
	CreatedAt       string `json:"created_at"`
	HighlightColor  int    `json:"highlight_color"`
}

type bookmarkRecord struct {
	ID            string  `json:"id"`
	TextbookID    string  `json:"textbook_id"`
	ChapterNumber int     `json:"chapter_number"`
	SectionNumber int     `json:"section_number"`
	SectionTitle  string  `json:"section_title"`
	Note          string  `json:"note"`
	Category      string  `json:"category"`
	CreatedAt     string  `json:"created_at"`
	LastModified  *string `json:"last_modified"`
}

type stateRecord struct {
	TextbookID          string            `json:"textbook_id"`
	ChapterNumber       int               `json:"chapter_number"`
	CurrentSectionIndex int               `json:"current_section_index"`
	Sections            []sectionRecord   `json:"sections"`
	Highlights          []highlightRecord `json:"highlights"`
	Bookmarks           []bookmarkRecord  `json:"bookmarks"`
	IsHighlightMode     bool              `json:"is_highlight_mode"`
	ReadingProgress     float64           `json:"reading_progress"`
	ReadingTimeMs       int64             `json:"reading_time_ms"`
	KeyPoints           []string          `json:"key_points"`
	LastUpdated         string            `json:"last_updated"`
	Metadata            map[string]any    `json:"metadata"`
}

const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func encodeTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

func decodeTime(field, value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode reading state: bad timestamp in %s: %w", field, err)
	}
	return t, nil
}

func decodeTimePtr(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := decodeTime(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s State) MarshalJSON() ([]byte, error) {
	rec := stateRecord{
		TextbookID:          s.TextbookID,
		ChapterNumber:       s.ChapterNumber,
		CurrentSectionIndex: s.CurrentSectionIndex,
		Sections:            make([]sectionRecord, 0, len(s.Sections)),
		Highlights:          make([]highlightRecord, 0, len(s.Highlights)),
		Bookmarks:           make([]bookmarkRecord, 0, len(s.Bookmarks)),
		IsHighlightMode:     s.IsHighlightMode,
		ReadingProgress:     s.ReadingProgress,
		ReadingTimeMs:       s.ReadingTime.Milliseconds(),
		KeyPoints:           s.KeyPoints,
		LastUpdated:         encodeTime(s.LastUpdated),
		Metadata:            s.Metadata,
	}
	for _, sec := range s.Sections {
		rec.Sections = append(rec.Sections, sectionRecord{
			SectionNumber: sec.SectionNumber,
			Title:         sec.Title,
			Content:       sec.Content,
			KeyTerms:      sec.KeyTerms,
			IsCompleted:   sec.IsCompleted,
			CompletedAt:   encodeTimePtr(sec.CompletedAt),
		})
	}
	for _, h := range s.Highlights {
		rec.Highlights = append(rec.Highlights, highlightRecord{
			ID:              h.ID,
			TextbookID:      h.TextbookID,
			ChapterNumber:   h.ChapterNumber,
			SectionNumber:   h.SectionNumber,
			HighlightedText: h.HighlightedText,
			StartOffset:     h.StartOffset,
			EndOffset:       h.EndOffset,
			CreatedAt:       encodeTime(h.CreatedAt),
			HighlightColor:  int(h.Color),
		})
	}
	for _, b := range s.Bookmarks {
		rec.Bookmarks = append(rec.Bookmarks, bookmarkRecord{
			ID:            b.ID,
			TextbookID:    b.TextbookID,
			ChapterNumber: b.ChapterNumber,
			SectionNumber: b.SectionNumber,
			SectionTitle:  b.SectionTitle,
			Note:          b.Note,
			Category:      string(b.Category),
			CreatedAt:     encodeTime(b.CreatedAt),
			LastModified:  encodeTimePtr(b.LastModified),
		})
	}
	return json.Marshal(rec)
}

// UnmarshalJSON fails fast on missing required fields or malformed
// timestamps instead of producing a half-populated state.
func (s *State) UnmarshalJSON(data []byte) error {
	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode reading state: %w", err)
	}
	if rec.TextbookID == "" {
		return fmt.Errorf("decode reading state: missing textbook_id")
	}
	if rec.ChapterNumber < 1 {
		return fmt.Errorf("decode reading state: missing or invalid chapter_number")
	}
	if rec.LastUpdated == "" {
		return fmt.Errorf("decode reading state: missing last_updated")
	}

	lastUpdated, err := decodeTime("last_updated", rec.LastUpdated)
	if err != nil {
		return err
	}

	decoded := State{
		TextbookID:          rec.TextbookID,
		ChapterNumber:       rec.ChapterNumber,
		CurrentSectionIndex: rec.CurrentSectionIndex,
		Sections:            make([]Section, 0, len(rec.Sections)),
		Highlights:          make([]Highlight, 0, len(rec.Highlights)),
		Bookmarks:           make([]Bookmark, 0, len(rec.Bookmarks)),
		IsHighlightMode:     rec.IsHighlightMode,
		ReadingProgress:     rec.ReadingProgress,
		ReadingTime:         time.Duration(rec.ReadingTimeMs) * time.Millisecond,
		KeyPoints:           rec.KeyPoints,
		LastUpdated:         lastUpdated,
		Metadata:            rec.Metadata,
	}

	for _, sr := range rec.Sections {
		completedAt, err := decodeTimePtr("sections.completed_at", sr.CompletedAt)
		if err != nil {
			return err
		}
		decoded.Sections = append(decoded.Sections, Section{
			SectionNumber: sr.SectionNumber,
			Title:         sr.Title,
			Content:       sr.Content,
			KeyTerms:      sr.KeyTerms,
			IsCompleted:   sr.IsCompleted,
			CompletedAt:   completedAt,
		})
	}
	for _, hr := range rec.Highlights {
		createdAt, err := decodeTime("highlights.created_at", hr.CreatedAt)
		if err != nil {
			return err
		}
		decoded.Highlights = append(decoded.Highlights, Highlight{
			ID:              hr.ID,
			TextbookID:      hr.TextbookID,
			ChapterNumber:   hr.ChapterNumber,
			SectionNumber:   hr.SectionNumber,
			HighlightedText: hr.HighlightedText,
			StartOffset:     hr.StartOffset,
			EndOffset:       hr.EndOffset,
			CreatedAt:       createdAt,
			Color:           HighlightColor(hr.HighlightColor),
		})
	}
	for _, br := range rec.Bookmarks {
		category, err := ParseBookmarkCategory(br.Category)
		if err != nil {
			return fmt.Errorf("decode reading state: %w", err)
		}
		createdAt, err := decodeTime("bookmarks.created_at", br.CreatedAt)
		if err != nil {
			return err
		}
		lastModified, err := decodeTimePtr("bookmarks.last_modified", br.LastModified)
		if err != nil {
			return err
		}
		decoded.Bookmarks = append(decoded.Bookmarks, Bookmark{
			ID:            br.ID,
			TextbookID:    br.TextbookID,
			ChapterNumber: br.ChapterNumber,
			SectionNumber: br.SectionNumber,
			SectionTitle:  br.SectionTitle,
			Note:          br.Note,
			Category:      category,
			CreatedAt:     createdAt,
			LastModified:  lastModified,
		})
	}

	*s = decoded
	return nil
}
