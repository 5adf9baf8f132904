package reading

import (
	"fmt"
	"time"
)

// State is the aggregate reading state for one (textbook, chapter) pair.
// Every mutator returns a fresh State and refreshes LastUpdated; the receiver
// is never modified, so the host can keep a single authoritative value and
// swap it atomically.
type State struct {
	TextbookID          string
	ChapterNumber       int
	CurrentSectionIndex int
	Sections            []Section
	Highlights          []Highlight
	Bookmarks           []Bookmark
	IsHighlightMode     bool
	ReadingProgress     float64
	ReadingTime         time.Duration
	KeyPoints           []string
	LastUpdated         time.Time
	Metadata            map[string]any
}

// NewState is the entry point for a freshly opened chapter: index 0, zero
// progress, zero accumulated time.
func NewState(textbookID string, chapterNumber int, sections []Section, keyPoints []string) State {
	s := State{
		TextbookID:    textbookID,
		ChapterNumber: chapterNumber,
		Sections:      sections,
		Highlights:    []Highlight{},
		Bookmarks:     []Bookmark{},
		KeyPoints:     keyPoints,
		LastUpdated:   time.Now(),
		Metadata:      map[string]any{},
	}
	s.ReadingProgress = s.computeProgress(sections)
	return s
}

// computeProgress is the single source of truth for ReadingProgress: the
// fraction of completed sections, 0 for an empty chapter. Navigation never
// feeds into it.
func (s State) computeProgress(sections []Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	completed := 0
	for _, sec := range sections {
		if sec.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(sections))
}

func (s State) touch() State {
	s.LastUpdated = time.Now()
	return s
}

// WithCurrentSection moves the section pointer. Progress is recomputed from
// the unchanged completion flags, so navigating alone never changes it.
func (s State) WithCurrentSection(index int) (State, error) {
	if index < 0 || index >= len(s.Sections) {
		return s, &RangeError{Op: "WithCurrentSection", Index: index, Length: len(s.Sections)}
	}
	s.CurrentSectionIndex = index
	s.ReadingProgress = s.computeProgress(s.Sections)
	return s.touch(), nil
}

// MarkSectionCompleted replaces the section at index with its completed copy
// and recomputes progress. Idempotent with respect to progress.
func (s State) MarkSectionCompleted(index int) (State, error) {
	if index < 0 || index >= len(s.Sections) {
		return s, &RangeError{Op: "MarkSectionCompleted", Index: index, Length: len(s.Sections)}
	}
	sections := make([]Section, len(s.Sections))
	copy(sections, s.Sections)
	sections[index] = sections[index].MarkCompleted()
	s.Sections = sections
	s.ReadingProgress = s.computeProgress(sections)
	return s.touch(), nil
}

func (s State) ToggleHighlightMode() State {
	s.IsHighlightMode = !s.IsHighlightMode
	return s.touch()
}

func (s State) AddHighlight(h Highlight) State {
	highlights := make([]Highlight, 0, len(s.Highlights)+1)
	highlights = append(highlights, s.Highlights...)
	s.Highlights = append(highlights, h)
	return s.touch()
}

func (s State) RemoveHighlight(id string) State {
	highlights := make([]Highlight, 0, len(s.Highlights))
	for _, h := range s.Highlights {
		if h.ID != id {
			highlights = append(highlights, h)
		}
	}
	s.Highlights = highlights
	return s.touch()
}

// UpdateHighlight replaces the highlight with the same id in place. When the
// id is absent the state comes back unchanged, LastUpdated included.
func (s State) UpdateHighlight(h Highlight) State {
	for i, existing := range s.Highlights {
		if existing.ID == h.ID {
			highlights := make([]Highlight, len(s.Highlights))
			copy(highlights, s.Highlights)
			highlights[i] = h
			s.Highlights = highlights
			return s.touch()
		}
	}
	return s
}

func (s State) AddBookmark(b Bookmark) State {
	bookmarks := make([]Bookmark, 0, len(s.Bookmarks)+1)
	bookmarks = append(bookmarks, s.Bookmarks...)
	s.Bookmarks = append(bookmarks, b)
	return s.touch()
}

func (s State) RemoveBookmark(id string) State {
	bookmarks := make([]Bookmark, 0, len(s.Bookmarks))
	for _, b := range s.Bookmarks {
		if b.ID != id {
			bookmarks = append(bookmarks, b)
		}
	}
	s.Bookmarks = bookmarks
	return s.touch()
}

func (s State) UpdateBookmark(b Bookmark) State {
	for i, existing := range s.Bookmarks {
		if existing.ID == b.ID {
			bookmarks := make([]Bookmark, len(s.Bookmarks))
			copy(bookmarks, s.Bookmarks)
			bookmarks[i] = b
			s.Bookmarks = bookmarks
			return s.touch()
		}
	}
	return s
}

// AddReadingTime accumulates time spent reading. Negative deltas are a caller
// error, not something to clamp away silently.
func (s State) AddReadingTime(delta time.Duration) (State, error) {
	if delta < 0 {
		return s, ErrNegativeDuration
	}
	s.ReadingTime += delta
	return s.touch(), nil
}

// WithMetadata upserts one key into the open extension map.
func (s State) WithMetadata(key string, value any) State {
	metadata := make(map[string]any, len(s.Metadata)+1)
	for k, v := range s.Metadata {
		metadata[k] = v
	}
	metadata[key] = value
	s.Metadata = metadata
	return s.touch()
}

// CurrentSection returns the section under the pointer, or false for an
// empty chapter.
func (s State) CurrentSection() (Section, bool) {
	if len(s.Sections) == 0 || s.CurrentSectionIndex < 0 || s.CurrentSectionIndex >= len(s.Sections) {
		return Section{}, false
	}
	return s.Sections[s.CurrentSectionIndex], true
}

func (s State) TotalSections() int {
	return len(s.Sections)
}

func (s State) CompletedSectionsCount() int {
	count := 0
	for _, sec := range s.Sections {
		if sec.IsCompleted {
			count++
		}
	}
	return count
}

func (s State) IsChapterCompleted() bool {
	return s.ReadingProgress >= 1.0
}

func (s State) HasNextSection() bool {
	return s.CurrentSectionIndex < len(s.Sections)-1
}

func (s State) HasPreviousSection() bool {
	return s.CurrentSectionIndex > 0
}

// CurrentSectionHighlights filters highlights down to the section under the
// pointer.
func (s State) CurrentSectionHighlights() []Highlight {
	current, ok := s.CurrentSection()
	if !ok {
		return nil
	}
	var result []Highlight
	for _, h := range s.Highlights {
		if h.ChapterNumber == s.ChapterNumber && h.SectionNumber == current.SectionNumber {
			result = append(result, h)
		}
	}
	return result
}

func (s State) CurrentSectionBookmarks() []Bookmark {
	current, ok := s.CurrentSection()
	if !ok {
		return nil
	}
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if b.ChapterNumber == s.ChapterNumber && b.SectionNumber == current.SectionNumber {
			result = append(result, b)
		}
	}
	return result
}

func (s State) ProgressPercentage() float64 {
	return s.ReadingProgress * 100
}

// FormattedReadingTime renders the accumulated time as "1h 5m" / "12m".
func (s State) FormattedReadingTime() string {
	total := int(s.ReadingTime.Minutes())
	hours := total / 60
	minutes := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// IsValid is the structural invariant check used before persisting.
func (s State) IsValid() bool {
	if s.TextbookID == "" || s.ChapterNumber < 1 {
		return false
	}
	if len(s.Sections) > 0 && (s.CurrentSectionIndex < 0 || s.CurrentSectionIndex >= len(s.Sections)) {
		return false
	}
	if s.ReadingProgress < 0 || s.ReadingProgress > 1 {
		return false
	}
	return s.ReadingTime >= 0
}
