package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one embedded passage of textbook material used for
// tutor answers.
type KnowledgeChunk struct {
	Id        uuid.UUID
	Topic     string
	Document  string
	Embedding []float32
	CreatedAt time.Time
}

// ScoredChunk is a retrieval hit with its cosine similarity to the query.
type ScoredChunk struct {
	Chunk      KnowledgeChunk
	Similarity float64
}
