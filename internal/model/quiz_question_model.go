package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizQuestion struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Topic      string         `gorm:"type:varchar(255);not null;index"`
	Difficulty string         `gorm:"type:varchar(32);not null;default:'Medium'"`
	Prompt     string         `gorm:"type:text;not null"`
	Choices    datatypes.JSON `gorm:"type:jsonb"`
	Answer     int            `gorm:"not null;default:0"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
