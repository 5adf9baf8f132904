package reading

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSectionState() State {
	sections := []Section{
		NewSection(1, "Intro", "what cells are", []string{"cell"}),
		NewSection(2, "Organelles", "mitochondria and friends", nil),
		NewSection(3, "Division", "mitosis and meiosis", []string{"mitosis", "meiosis"}),
	}
	return NewState("bio-101", 3, sections, []string{"Cells are the unit of life"})
}

func TestNewStateInitialValues(t *testing.T) {
	s := threeSectionState()

	assert.Equal(t, 0, s.CurrentSectionIndex)
	assert.Equal(t, 0.0, s.ReadingProgress)
	assert.Equal(t, time.Duration(0), s.ReadingTime)
	assert.Equal(t, 3, s.TotalSections())
	assert.False(t, s.IsChapterCompleted())
	assert.True(t, s.IsValid())
}

func TestNewStateEmptySections(t *testing.T) {
	s := NewState("bio-101", 1, nil, nil)
	assert.Equal(t, 0.0, s.ReadingProgress)
	_, ok := s.CurrentSection()
	assert.False(t, ok)
	assert.Nil(t, s.CurrentSectionHighlights())
}

func TestWithCurrentSection(t *testing.T) {
	s := threeSectionState()

	for i := 0; i < s.TotalSections(); i++ {
		moved, err := s.WithCurrentSection(i)
		require.NoError(t, err)
		assert.Equal(t, i, moved.CurrentSectionIndex)
		// Navigation alone never changes progress.
		assert.Equal(t, 0.0, moved.ReadingProgress)
	}
}

func TestWithCurrentSectionOutOfRange(t *testing.T) {
	s := threeSectionState()

	for _, index := range []int{-1, 3, 99} {
		_, err := s.WithCurrentSection(index)
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr, "index %d", index)
		assert.Equal(t, index, rangeErr.Index)
		assert.Equal(t, 3, rangeErr.Length)
	}
}

func TestMarkSectionCompleted(t *testing.T) {
	s := threeSectionState()

	updated, err := s.MarkSectionCompleted(1)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, updated.ReadingProgress, 1e-9)
	assert.True(t, updated.Sections[1].IsCompleted)
	assert.NotNil(t, updated.Sections[1].CompletedAt)

	// Receiver untouched.
	assert.False(t, s.Sections[1].IsCompleted)
	assert.Equal(t, 0.0, s.ReadingProgress)
}

func TestMarkSectionCompletedIdempotentProgress(t *testing.T) {
	s := threeSectionState()

	once, err := s.MarkSectionCompleted(0)
	require.NoError(t, err)
	twice, err := once.MarkSectionCompleted(0)
	require.NoError(t, err)

	assert.Equal(t, once.ReadingProgress, twice.ReadingProgress)
	assert.Equal(t, 1, twice.CompletedSectionsCount())
}

func TestCompleteAllSections(t *testing.T) {
	s := threeSectionState()

	var err error
	for i := 0; i < s.TotalSections(); i++ {
		s, err = s.MarkSectionCompleted(i)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, s.ReadingProgress)
	assert.True(t, s.IsChapterCompleted())
	assert.Equal(t, 100.0, s.ProgressPercentage())
}

func TestMarkSectionCompletedOutOfRange(t *testing.T) {
	s := threeSectionState()
	_, err := s.MarkSectionCompleted(3)
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestProgressMatchesCompletionFraction(t *testing.T) {
	s := threeSectionState()
	s, _ = s.MarkSectionCompleted(0)
	s, _ = s.MarkSectionCompleted(2)

	want := float64(s.CompletedSectionsCount()) / float64(s.TotalSections())
	assert.True(t, math.Abs(s.ReadingProgress-want) < 1e-9)
}

func TestToggleHighlightMode(t *testing.T) {
	s := threeSectionState()
	assert.False(t, s.IsHighlightMode)

	on := s.ToggleHighlightMode()
	assert.True(t, on.IsHighlightMode)
	assert.False(t, on.ToggleHighlightMode().IsHighlightMode)
	// Toggling never touches progress.
	assert.Equal(t, s.ReadingProgress, on.ReadingProgress)
}

func TestHighlightOperations(t *testing.T) {
	s := threeSectionState()
	h := NewHighlight("bio-101", 3, 1, "cells", 0, 5, ColorYellow)

	added := s.AddHighlight(h)
	require.Len(t, added.Highlights, 1)
	assert.Empty(t, s.Highlights, "AddHighlight must not mutate the receiver")
	assert.Equal(t, 0.0, added.ReadingProgress, "highlight ops never affect progress")

	recolored := h
	recolored.Color = ColorBlue
	updated := added.UpdateHighlight(recolored)
	assert.Equal(t, ColorBlue, updated.Highlights[0].Color)

	// Unknown id is a no-op that returns the state unchanged.
	ghost := NewHighlight("bio-101", 3, 1, "ghost", 0, 5, ColorPink)
	unchanged := updated.UpdateHighlight(ghost)
	assert.Equal(t, updated.Highlights, unchanged.Highlights)
	assert.Equal(t, updated.LastUpdated, unchanged.LastUpdated)

	removed := updated.RemoveHighlight(h.ID)
	assert.Empty(t, removed.Highlights)

	// Removing an absent id leaves the list as-is.
	assert.Empty(t, removed.RemoveHighlight("nope").Highlights)
}

func TestBookmarkOperations(t *testing.T) {
	s := threeSectionState()
	b := NewBookmark("bio-101", 3, 1, "Intro", "", CategoryImportant)

	added := s.AddBookmark(b)
	require.Len(t, added.Bookmarks, 1)
	assert.Empty(t, s.Bookmarks)

	annotated := b.UpdateNote("re-read before exam")
	updated := added.UpdateBookmark(annotated)
	assert.Equal(t, "re-read before exam", updated.Bookmarks[0].Note)

	removed := updated.RemoveBookmark(b.ID)
	assert.Empty(t, removed.Bookmarks)
}

func TestAddReadingTime(t *testing.T) {
	s := threeSectionState()

	s, err := s.AddReadingTime(5 * time.Minute)
	require.NoError(t, err)
	s, err = s.AddReadingTime(90 * time.Second)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute+90*time.Second, s.ReadingTime)

	_, err = s.AddReadingTime(-time.Second)
	assert.True(t, errors.Is(err, ErrNegativeDuration))
	// Failed call leaves time untouched.
	assert.Equal(t, 5*time.Minute+90*time.Second, s.ReadingTime)
}

func TestFormattedReadingTime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero", duration: 0, want: "0m"},
		{name: "minutes only", duration: 12 * time.Minute, want: "12m"},
		{name: "hours and minutes", duration: time.Hour + 5*time.Minute, want: "1h 5m"},
		{name: "exact hours", duration: 2 * time.Hour, want: "2h 0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeSectionState()
			s.ReadingTime = tt.duration
			assert.Equal(t, tt.want, s.FormattedReadingTime())
		})
	}
}

func TestWithMetadata(t *testing.T) {
	s := threeSectionState()
	tagged := s.WithMetadata("scroll_position", 0.42)

	assert.Equal(t, 0.42, tagged.Metadata["scroll_position"])
	assert.NotContains(t, s.Metadata, "scroll_position", "WithMetadata must copy the map")

	// Upsert overwrites.
	assert.Equal(t, 0.9, tagged.WithMetadata("scroll_position", 0.9).Metadata["scroll_position"])
}

func TestNavigationBounds(t *testing.T) {
	s := threeSectionState()

	assert.True(t, s.HasNextSection())
	assert.False(t, s.HasPreviousSection())

	last, err := s.WithCurrentSection(2)
	require.NoError(t, err)
	assert.False(t, last.HasNextSection())
	assert.True(t, last.HasPreviousSection())
}

func TestCurrentSectionFiltering(t *testing.T) {
	s := threeSectionState()
	s, err := s.WithCurrentSection(1)
	require.NoError(t, err)

	matching := NewHighlight("bio-101", 3, 2, "organelles", 0, 10, ColorYellow)
	otherSection := NewHighlight("bio-101", 3, 1, "intro text", 0, 10, ColorYellow)
	s = s.AddHighlight(matching).AddHighlight(otherSection)

	got := s.CurrentSectionHighlights()
	require.Len(t, got, 1)
	assert.Equal(t, matching.ID, got[0].ID)

	bm := NewBookmark("bio-101", 3, 2, "Organelles", "", CategoryReview)
	s = s.AddBookmark(bm).AddBookmark(NewBookmark("bio-101", 3, 3, "Division", "", CategoryReview))
	gotBm := s.CurrentSectionBookmarks()
	require.Len(t, gotBm, 1)
	assert.Equal(t, bm.ID, gotBm[0].ID)
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
		want   bool
	}{
		{name: "fresh state", mutate: func(*State) {}, want: true},
		{name: "empty textbook id", mutate: func(s *State) { s.TextbookID = "" }, want: false},
		{name: "chapter below one", mutate: func(s *State) { s.ChapterNumber = 0 }, want: false},
		{name: "index out of bounds", mutate: func(s *State) { s.CurrentSectionIndex = 5 }, want: false},
		{name: "progress above one", mutate: func(s *State) { s.ReadingProgress = 1.5 }, want: false},
		{name: "negative reading time", mutate: func(s *State) { s.ReadingTime = -time.Minute }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeSectionState()
			tt.mutate(&s)
			assert.Equal(t, tt.want, s.IsValid())
		})
	}
}
