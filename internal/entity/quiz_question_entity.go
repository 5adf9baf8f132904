package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestion struct {
	Id         uuid.UUID
	Topic      string
	Difficulty string
	Prompt     string
	Choices    []string
	Answer     int
	CreatedAt  time.Time
}
