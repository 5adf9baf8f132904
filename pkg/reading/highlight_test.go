package reading

import (
	"strings"
	"testing"
)

func highlightAt(section, start, end int) Highlight {
	return NewHighlight("bio-101", 3, section, strings.Repeat("x", end-start), start, end, ColorYellow)
}

func TestHighlightOverlapsWith(t *testing.T) {
	tests := []struct {
		name string
		a, b Highlight
		want bool
	}{
		{name: "intersecting ranges", a: highlightAt(1, 10, 20), b: highlightAt(1, 15, 25), want: true},
		{name: "contained range", a: highlightAt(1, 10, 30), b: highlightAt(1, 15, 20), want: true},
		{name: "adjacent ranges do not overlap", a: highlightAt(1, 10, 20), b: highlightAt(1, 20, 30), want: false},
		{name: "disjoint ranges", a: highlightAt(1, 0, 5), b: highlightAt(1, 10, 15), want: false},
		{name: "different section", a: highlightAt(1, 10, 20), b: highlightAt(2, 10, 20), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapsWith(tt.b); got != tt.want {
				t.Errorf("OverlapsWith() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.OverlapsWith(tt.a); got != tt.want {
				t.Errorf("reverse OverlapsWith() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHighlightDifferentTextbookNeverOverlaps(t *testing.T) {
	a := NewHighlight("bio-101", 1, 1, "text", 0, 4, ColorYellow)
	b := NewHighlight("chem-201", 1, 1, "text", 0, 4, ColorYellow)
	if a.OverlapsWith(b) {
		t.Error("highlights from different textbooks must not overlap")
	}
}

func TestHighlightContainsOffset(t *testing.T) {
	h := highlightAt(1, 10, 20)

	tests := []struct {
		offset int
		want   bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{19, true},
		{20, false}, // end is exclusive
	}
	for _, tt := range tests {
		if got := h.ContainsOffset(tt.offset); got != tt.want {
			t.Errorf("ContainsOffset(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestHighlightPreview(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{name: "short text unchanged", text: "short", maxLength: 50, want: "short"},
		{name: "exact length unchanged", text: strings.Repeat("a", 50), maxLength: 50, want: strings.Repeat("a", 50)},
		{name: "long text truncated", text: strings.Repeat("a", 60), maxLength: 50, want: strings.Repeat("a", 47) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHighlight("bio-101", 1, 1, tt.text, 0, len(tt.text), ColorGreen)
			got := h.Preview(tt.maxLength)
			if got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.maxLength, got, tt.want)
			}
			if len(tt.text) > tt.maxLength && len(got) != tt.maxLength {
				t.Errorf("truncated preview length = %d, want exactly %d", len(got), tt.maxLength)
			}
		})
	}
}

func TestHighlightDefaults(t *testing.T) {
	h := NewHighlight("bio-101", 1, 1, "span", 0, 4, 0)
	if h.Color != ColorYellow {
		t.Errorf("default color = %v, want yellow", h.Color)
	}
	if h.ID == "" {
		t.Error("constructor must assign an id")
	}
	if h.CreatedAt.IsZero() {
		t.Error("constructor must set CreatedAt")
	}
}

func TestHighlightColorInfo(t *testing.T) {
	if ColorGreen.Info().Name != "green" {
		t.Errorf("green info = %+v", ColorGreen.Info())
	}
	// Unknown codes fall back to the yellow entry.
	if HighlightColor(0x123).Info().Name != "yellow" {
		t.Error("unknown color must fall back to yellow metadata")
	}
}
