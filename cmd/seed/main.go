package main

import (
	"encoding/json"
	"log"
	"os"

	"studytrail-be/internal/config"
	"studytrail-be/internal/model"
	"studytrail-be/pkg/database"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// bankQuestion mirrors one entry of the question bank JSON file.
type bankQuestion struct {
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Choices    []string `json:"choices"`
	Answer     int      `json:"answer"`
}

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Seeding quiz questions from %s...", cfg.Quiz.BankPath)
	seedQuizQuestions(db, cfg.Quiz.BankPath)
}

func seedQuizQuestions(db *gorm.DB, bankPath string) {
	raw, err := os.ReadFile(bankPath)
	if err != nil {
		log.Fatalf("Error: Failed to read question bank: %v", err)
	}

	var bank []bankQuestion
	if err := json.Unmarshal(raw, &bank); err != nil {
		log.Fatalf("Error: Failed to parse question bank: %v", err)
	}

	seeded := 0
	for _, q := range bank {
		choices, err := json.Marshal(q.Choices)
		if err != nil {
			log.Printf("Warn: Skipping question with bad choices (%s): %v", q.Prompt, err)
			continue
		}

		row := model.QuizQuestion{
			Id:         uuid.New(),
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
			Prompt:     q.Prompt,
			Choices:    datatypes.JSON(choices),
			Answer:     q.Answer,
		}

		// Re-running the seeder must not duplicate questions.
		var count int64
		if err := db.Model(&model.QuizQuestion{}).Where("prompt = ?", q.Prompt).Count(&count).Error; err != nil {
			log.Printf("Warn: Failed to check question (%s): %v", q.Prompt, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("Warn: Failed to seed question (%s): %v", q.Prompt, err)
			continue
		}
		seeded++
	}

	log.Printf("✅ Success: Seeded %d new quiz questions (%d in bank).", seeded, len(bank))
}
