package reading

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookmarkLastModified(t *testing.T) {
	empty := NewBookmark("bio-101", 3, 1, "Cell Structure", "", CategoryImportant)
	assert.Nil(t, empty.LastModified, "empty note must leave LastModified nil")

	withNote := NewBookmark("bio-101", 3, 1, "Cell Structure", "check diagram", CategoryReview)
	assert.NotNil(t, withNote.LastModified, "initial note counts as a modification")
}

func TestBookmarkUpdateNote(t *testing.T) {
	b := NewBookmark("bio-101", 3, 1, "Cell Structure", "", CategoryImportant)
	updated := b.UpdateNote("remember this")

	require.NotNil(t, updated.LastModified)
	assert.Equal(t, "remember this", updated.Note)
	assert.False(t, updated.LastModified.Before(updated.CreatedAt), "LastModified must be >= CreatedAt")

	// Identity fields never change on update.
	assert.Equal(t, b.ID, updated.ID)
	assert.Equal(t, b.TextbookID, updated.TextbookID)
	assert.Equal(t, b.ChapterNumber, updated.ChapterNumber)
	assert.Equal(t, b.SectionNumber, updated.SectionNumber)

	// Receiver untouched.
	assert.Empty(t, b.Note)
	assert.Nil(t, b.LastModified)
}

func TestBookmarkUpdateCategory(t *testing.T) {
	b := NewBookmark("bio-101", 3, 1, "Cell Structure", "", CategoryImportant)
	updated := b.UpdateCategory(CategoryQuestion)

	assert.Equal(t, CategoryQuestion, updated.Category)
	require.NotNil(t, updated.LastModified)
	assert.Equal(t, CategoryImportant, b.Category)
}

func TestBookmarkUpdateNoteAndCategory(t *testing.T) {
	b := NewBookmark("bio-101", 3, 1, "Cell Structure", "old", CategorySummary)
	updated := b.UpdateNoteAndCategory("new", CategoryReference)

	assert.Equal(t, "new", updated.Note)
	assert.Equal(t, CategoryReference, updated.Category)
	require.NotNil(t, updated.LastModified)
}

func TestBookmarkNotePreview(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
	}{
		{name: "empty note", note: "", want: "No note"},
		{name: "short note", note: "revisit", want: "revisit"},
		{name: "long note truncated", note: strings.Repeat("n", 60), want: strings.Repeat("n", 47) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBookmark("bio-101", 3, 1, "Cell Structure", tt.note, CategoryImportant)
			assert.Equal(t, tt.want, b.NotePreview(50))
		})
	}
}

func TestBookmarkDisplayText(t *testing.T) {
	noted := NewBookmark("bio-101", 3, 1, "Cell Structure", "mitochondria detail", CategoryImportant)
	assert.Equal(t, "mitochondria detail", noted.DisplayText())

	bare := NewBookmark("bio-101", 3, 1, "Cell Structure", "", CategoryImportant)
	assert.Equal(t, "Cell Structure", bare.DisplayText())
}

func TestBookmarkIsSameSection(t *testing.T) {
	a := NewBookmark("bio-101", 3, 1, "Cell Structure", "", CategoryImportant)
	b := NewBookmark("bio-101", 3, 1, "Cell Structure", "other note", CategoryReview)
	c := NewBookmark("bio-101", 3, 2, "Organelles", "", CategoryImportant)

	assert.True(t, a.IsSameSection(b))
	assert.False(t, a.IsSameSection(c))
}

func TestBookmarkIsValid(t *testing.T) {
	valid := NewBookmark("bio-101", 3, 0, "Cell Structure", "", CategoryImportant)
	assert.True(t, valid.IsValid())

	tests := []struct {
		name   string
		mutate func(*Bookmark)
	}{
		{name: "empty id", mutate: func(b *Bookmark) { b.ID = "" }},
		{name: "empty textbook", mutate: func(b *Bookmark) { b.TextbookID = "" }},
		{name: "empty section title", mutate: func(b *Bookmark) { b.SectionTitle = "" }},
		{name: "chapter below one", mutate: func(b *Bookmark) { b.ChapterNumber = 0 }},
		{name: "negative section", mutate: func(b *Bookmark) { b.SectionNumber = -1 }},
		{name: "created in the future", mutate: func(b *Bookmark) { b.CreatedAt = time.Now().Add(time.Hour) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			assert.False(t, b.IsValid())
		})
	}
}

func TestParseBookmarkCategory(t *testing.T) {
	for _, name := range []string{"important", "review", "question", "reference", "summary", "custom"} {
		c, err := ParseBookmarkCategory(name)
		require.NoError(t, err)
		assert.Equal(t, BookmarkCategory(name), c)
	}

	_, err := ParseBookmarkCategory("starred")
	assert.Error(t, err)
}
