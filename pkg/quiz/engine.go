// Package quiz picks practice questions from a loaded question bank and
// turns quiz results into study feedback.
package quiz

import (
	"math/rand"
)

// DefaultQuestionCount is how many questions a generated quiz holds unless
// the caller asks for fewer.
const DefaultQuestionCount = 5

// Question is one entry of the question bank.
type Question struct {
	ID         string   `json:"id"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Choices    []string `json:"choices"`
	Answer     int      `json:"answer"`
}

// Engine samples questions from an in-memory bank.
type Engine struct {
	bank []Question
	rng  *rand.Rand
}

func NewEngine(bank []Question, rng *rand.Rand) *Engine {
	return &Engine{bank: bank, rng: rng}
}

// Generate returns up to count random questions without repeats. Topic and
// difficulty narrowing happens before the bank is loaded; the engine only
// samples.
func (e *Engine) Generate(count int) []Question {
	if len(e.bank) == 0 {
		return []Question{}
	}
	if count <= 0 {
		count = DefaultQuestionCount
	}
	if count > len(e.bank) {
		count = len(e.bank)
	}

	picked := make([]Question, len(e.bank))
	copy(picked, e.bank)
	e.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:count]
}

// BankSize reports how many questions are loaded.
func (e *Engine) BankSize() int {
	return len(e.bank)
}
