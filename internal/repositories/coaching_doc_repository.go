package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

type ICoachingDocRepository interface {
	CreateDoc(doc db_models.CoachingDoc) error
	GetDocsByVector(vector pgvector.Vector, limit int) ([]db_models.CoachingDoc, error)
}

type coachingDocRepository struct {
	db *gorm.DB
}

func NewCoachingDocRepository(db *gorm.DB) ICoachingDocRepository {
	return &coachingDocRepository{db: db}
}

func (c *coachingDocRepository) CreateDoc(doc db_models.CoachingDoc) error {
	return c.db.Create(&doc).Error
}

func (c *coachingDocRepository) GetDocsByVector(vector pgvector.Vector, limit int) ([]db_models.CoachingDoc, error) {
	var results []db_models.CoachingDoc

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM coaching_docs
        WHERE (1 - (embedding <=> $1)) > 0.6
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := c.db.Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
