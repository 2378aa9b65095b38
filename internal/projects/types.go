package projects

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// a portfolio project row; Embedding is only populated by vector search
// paths that need it for confidence scoring
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DemoURL     *string   `json:"demo_url,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Embedding   []float32 `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// one project entry in the seeder's JSON file
type SeedRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DemoURL     string `json:"demo_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Repository struct {
	db *pgxpool.Pool
}
