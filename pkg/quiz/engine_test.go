package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() []Question {
	return []Question{
		{ID: "q1", Topic: "Biology", Prompt: "What is a cell?"},
		{ID: "q2", Topic: "Biology", Prompt: "Name an organelle."},
		{ID: "q3", Topic: "Marine Biology", Prompt: "What is plankton?"},
		{ID: "q4", Topic: "Physics", Prompt: "Define velocity."},
		{ID: "q5", Topic: "Chemistry", Prompt: "What is a mole?"},
	}
}

func newTestEngine() *Engine {
	return NewEngine(testBank(), rand.New(rand.NewSource(1)))
}

func TestGenerateRespectsCount(t *testing.T) {
	e := newTestEngine()

	assert.Len(t, e.Generate(2), 2)
	assert.Len(t, e.Generate(0), 5, "non-positive count uses the default")
	assert.Len(t, e.Generate(10), 5, "count is capped at the bank size")
}

func TestGenerateNoDuplicates(t *testing.T) {
	e := newTestEngine()

	questions := e.Generate(5)
	seen := map[string]bool{}
	for _, q := range questions {
		assert.False(t, seen[q.ID], "question %s sampled twice", q.ID)
		seen[q.ID] = true
	}
}

func TestGenerateLeavesBankIntact(t *testing.T) {
	e := newTestEngine()

	e.Generate(5)
	require.Equal(t, "q1", e.bank[0].ID, "sampling must shuffle a copy, not the bank")
}

func TestGenerateEmptyBank(t *testing.T) {
	e := NewEngine(nil, rand.New(rand.NewSource(1)))
	assert.Empty(t, e.Generate(5))
}

func TestAnalyzePerformance(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    string
	}{
		{
			name:    "no data",
			results: nil,
			want:    "No data to analyze.",
		},
		{
			name: "weakness",
			results: []Result{
				{Topic: "Physics", IsCorrect: false},
				{Topic: "Physics", IsCorrect: false},
			},
			want: "Weakness detected in Physics. Review the lecture notes.",
		},
		{
			name: "perfect",
			results: []Result{
				{Topic: "Biology", IsCorrect: true},
				{Topic: "Biology", IsCorrect: true},
			},
			want: "Perfect score in Biology! Moving to advanced mode.",
		},
		{
			name: "middling",
			results: []Result{
				{Topic: "Chemistry", IsCorrect: true},
				{Topic: "Chemistry", IsCorrect: false},
				{Topic: "Chemistry", IsCorrect: true},
			},
			want: "Good progress in Chemistry. Keep practicing.",
		},
		{
			name: "multiple topics sorted",
			results: []Result{
				{Topic: "Physics", IsCorrect: false},
				{Topic: "Biology", IsCorrect: true},
			},
			want: "Perfect score in Biology! Moving to advanced mode. Weakness detected in Physics. Review the lecture notes.",
		},
		{
			name: "missing topic becomes general",
			results: []Result{
				{IsCorrect: true},
			},
			want: "Perfect score in General! Moving to advanced mode.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzePerformance(tt.results))
		})
	}
}
