package reading

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedState builds a fully populated state with deterministic UTC
// timestamps so round trips can be compared field for field.
func fixedState() State {
	completedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)

	return State{
		TextbookID:          "bio-101",
		ChapterNumber:       3,
		CurrentSectionIndex: 1,
		Sections: []Section{
			{SectionNumber: 1, Title: "Intro", Content: "cells", KeyTerms: []string{"cell"}, IsCompleted: true, CompletedAt: &completedAt},
			{SectionNumber: 2, Title: "Organelles", Content: "mitochondria", KeyTerms: []string{}},
		},
		Highlights: []Highlight{
			{
				ID:              "hl-1",
				TextbookID:      "bio-101",
				ChapterNumber:   3,
				SectionNumber:   1,
				HighlightedText: "cells",
				StartOffset:     0,
				EndOffset:       5,
				CreatedAt:       createdAt,
				Color:           ColorGreen,
			},
		},
		Bookmarks: []Bookmark{
			{
				ID:            "bm-1",
				TextbookID:    "bio-101",
				ChapterNumber: 3,
				SectionNumber: 2,
				SectionTitle:  "Organelles",
				Note:          "exam topic",
				Category:      CategoryReview,
				CreatedAt:     createdAt,
				LastModified:  &modifiedAt,
			},
		},
		IsHighlightMode: true,
		ReadingProgress: 0.5,
		ReadingTime:     42*time.Minute + 250*time.Millisecond,
		KeyPoints:       []string{"Cells are the unit of life"},
		LastUpdated:     modifiedAt,
		Metadata:        map[string]any{"scroll_position": 0.42, "font": "serif"},
	}
}

func TestStateRoundTrip(t *testing.T) {
	original := fixedState()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestStateWireFieldNames(t *testing.T) {
	data, err := json.Marshal(fixedState())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"textbook_id", "chapter_number", "current_section_index", "sections",
		"highlights", "bookmarks", "is_highlight_mode", "reading_progress",
		"reading_time_ms", "key_points", "last_updated", "metadata",
	} {
		assert.Contains(t, raw, key)
	}

	var readingTimeMs int64
	require.NoError(t, json.Unmarshal(raw["reading_time_ms"], &readingTimeMs))
	assert.Equal(t, int64(42*60*1000+250), readingTimeMs)
}

func TestStateRoundTripEmptyCollections(t *testing.T) {
	s := NewState("bio-101", 1, nil, nil)
	s.LastUpdated = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, s.TextbookID, decoded.TextbookID)
	assert.Empty(t, decoded.Sections)
	assert.Empty(t, decoded.Highlights)
	assert.Empty(t, decoded.Bookmarks)
	assert.True(t, s.LastUpdated.Equal(decoded.LastUpdated))
}

func TestStateDecodeFailures(t *testing.T) {
	valid, err := json.Marshal(fixedState())
	require.NoError(t, err)

	tests := []struct {
		name    string
		corrupt func(string) string
		wantIn  string
	}{
		{
			name:    "not json",
			corrupt: func(string) string { return "{" },
			wantIn:  "decode reading state",
		},
		{
			name:    "missing textbook id",
			corrupt: func(s string) string { return strings.Replace(s, `"textbook_id":"bio-101"`, `"textbook_id":""`, 1) },
			wantIn:  "missing textbook_id",
		},
		{
			name:    "invalid chapter number",
			corrupt: func(s string) string { return strings.Replace(s, `"chapter_number":3,"current`, `"chapter_number":0,"current`, 1) },
			wantIn:  "chapter_number",
		},
		{
			name:    "malformed last updated",
			corrupt: func(s string) string { return strings.Replace(s, `"last_updated":"2026-03-14T11:30:00Z"`, `"last_updated":"yesterday"`, 1) },
			wantIn:  "last_updated",
		},
		{
			name:    "unknown bookmark category",
			corrupt: func(s string) string { return strings.Replace(s, `"category":"review"`, `"category":"starred"`, 1) },
			wantIn:  "bookmark category",
		},
		{
			name:    "malformed highlight timestamp",
			corrupt: func(s string) string { return strings.Replace(s, `"created_at":"2026-03-14T10:00:00Z","highlight_color"`, `"created_at":"not-a-time","highlight_color"`, 1) },
			wantIn:  "highlights.created_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded State
			err := json.Unmarshal([]byte(tt.corrupt(string(valid))), &decoded)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}
