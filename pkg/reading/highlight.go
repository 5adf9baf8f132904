package reading

import (
	"time"

	"github.com/google/uuid"
)

// HighlightColor is an ARGB color code from the fixed highlight palette.
type HighlightColor int

const (
	ColorYellow HighlightColor = 0xFFFFF59D
	ColorGreen  HighlightColor = 0xFFA5D6A7
	ColorBlue   HighlightColor = 0xFF90CAF9
	ColorPink   HighlightColor = 0xFFF48FB1
	ColorOrange HighlightColor = 0xFFFFCC80
)

// HighlightColorInfo carries the presentation metadata for a palette color.
// Kept in a lookup table so domain logic stays free of display strings.
type HighlightColorInfo struct {
	Name  string
	Label string
}

var highlightColorInfos = map[HighlightColor]HighlightColorInfo{
	ColorYellow: {Name: "yellow", Label: "Yellow"},
	ColorGreen:  {Name: "green", Label: "Green"},
	ColorBlue:   {Name: "blue", Label: "Blue"},
	ColorPink:   {Name: "pink", Label: "Pink"},
	ColorOrange: {Name: "orange", Label: "Orange"},
}

// Info returns the display metadata for the color, falling back to yellow's
// entry for codes outside the palette.
func (c HighlightColor) Info() HighlightColorInfo {
	if info, ok := highlightColorInfos[c]; ok {
		return info
	}
	return highlightColorInfos[ColorYellow]
}

// Highlight is a user-selected text span within one chapter section.
// Immutable once created; edits happen by copy, removal by id.
type Highlight struct {
	ID              string
	TextbookID      string
	ChapterNumber   int
	SectionNumber   int
	HighlightedText string
	StartOffset     int
	EndOffset       int
	CreatedAt       time.Time
	Color           HighlightColor
}

// NewHighlight creates a highlight with a fresh id and CreatedAt set to now.
// Callers must keep EndOffset-StartOffset consistent with the selected text;
// the constructor does not enforce it.
func NewHighlight(textbookID string, chapterNumber, sectionNumber int, text string, startOffset, endOffset int, color HighlightColor) Highlight {
	if color == 0 {
		color = ColorYellow
	}
	return Highlight{
		ID:              uuid.NewString(),
		TextbookID:      textbookID,
		ChapterNumber:   chapterNumber,
		SectionNumber:   sectionNumber,
		HighlightedText: text,
		StartOffset:     startOffset,
		EndOffset:       endOffset,
		CreatedAt:       time.Now(),
		Color:           color,
	}
}

// ContainsOffset reports whether offset falls in [StartOffset, EndOffset).
func (h Highlight) ContainsOffset(offset int) bool {
	return offset >= h.StartOffset && offset < h.EndOffset
}

// OverlapsWith reports whether both highlights cover the same section and
// their ranges share at least one character. Touching endpoints do not count.
func (h Highlight) OverlapsWith(other Highlight) bool {
	if h.TextbookID != other.TextbookID ||
		h.ChapterNumber != other.ChapterNumber ||
		h.SectionNumber != other.SectionNumber {
		return false
	}
	return h.StartOffset < other.EndOffset && other.StartOffset < h.EndOffset
}

// Preview returns the highlighted text, truncated to exactly maxLength
// characters (ellipsis included) when it is longer.
func (h Highlight) Preview(maxLength int) string {
	return truncateWithEllipsis(h.HighlightedText, maxLength)
}

func truncateWithEllipsis(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength-3]) + "..."
}
