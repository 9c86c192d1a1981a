package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// CoachingDoc is a chunk of coaching knowledge (training philosophy, plan
// descriptions, nutrition guidance) embedded for retrieval by the assistant.
type CoachingDoc struct {
	DocID     string `gorm:"primaryKey;column:doc_id"`
	Title     string
	Content   string          `gorm:"type:text"`
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
