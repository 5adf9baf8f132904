package quiz

import (
	"fmt"
	"sort"
	"strings"
)

// Result is one answered question from a submitted quiz.
type Result struct {
	QuestionID string `json:"question_id"`
	Topic      string `json:"topic"`
	IsCorrect  bool   `json:"is_correct"`
}

// AnalyzePerformance folds quiz results into per-topic feedback. A topic
// averaging below half is flagged as a weakness, a perfect topic graduates,
// anything in between gets encouragement. Topics are reported in sorted
// order so the output is stable.
func AnalyzePerformance(results []Result) string {
	if len(results) == 0 {
		return "No data to analyze."
	}

	scores := map[string][]int{}
	for _, res := range results {
		topic := res.Topic
		if topic == "" {
			topic = "General"
		}
		correct := 0
		if res.IsCorrect {
			correct = 1
		}
		scores[topic] = append(scores[topic], correct)
	}

	topics := make([]string, 0, len(scores))
	for topic := range scores {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	lines := make([]string, 0, len(topics))
	for _, topic := range topics {
		sum := 0
		for _, v := range scores[topic] {
			sum += v
		}
		avg := float64(sum) / float64(len(scores[topic]))
		switch {
		case avg < 0.5:
			lines = append(lines, fmt.Sprintf("Weakness detected in %s. Review the lecture notes.", topic))
		case avg == 1.0:
			lines = append(lines, fmt.Sprintf("Perfect score in %s! Moving to advanced mode.", topic))
		default:
			lines = append(lines, fmt.Sprintf("Good progress in %s. Keep practicing.", topic))
		}
	}
	return strings.Join(lines, " ")
}
