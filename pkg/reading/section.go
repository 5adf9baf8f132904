package reading

import (
	"strings"
	"time"
)

// wordsPerMinute is the assumed reading speed for time estimates.
const wordsPerMinute = 200

// Section is one chapter subsection. Values are immutable: MarkCompleted and
// MarkIncomplete return copies, the receiver is never touched.
type Section struct {
	SectionNumber int
	Title         string
	Content       string
	KeyTerms      []string
	IsCompleted   bool
	CompletedAt   *time.Time
}

// NewSection builds an incomplete section. SectionNumber is expected to be
// >= 1 and unique within its chapter; the caller owns that guarantee.
func NewSection(sectionNumber int, title, content string, keyTerms []string) Section {
	return Section{
		SectionNumber: sectionNumber,
		Title:         title,
		Content:       content,
		KeyTerms:      keyTerms,
	}
}

func (s Section) MarkCompleted() Section {
	now := time.Now()
	s.IsCompleted = true
	s.CompletedAt = &now
	return s
}

func (s Section) MarkIncomplete() Section {
	s.IsCompleted = false
	s.CompletedAt = nil
	return s
}

// WordCount is the whitespace-split token count of the section body.
func (s Section) WordCount() int {
	return len(strings.Fields(s.Content))
}

// EstimatedReadingTimeMinutes is ceil(words/200), never below 1.
func (s Section) EstimatedReadingTimeMinutes() int {
	minutes := (s.WordCount() + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func (s Section) HasKeyTerms() bool {
	return len(s.KeyTerms) > 0
}
