package projects

import (
	"context"

	"github.com/devfolio/server/internal/projects"
)

// Response represents the guided-tour overview payload
type Response struct {
	Projects []projects.Project `json:"projects"`
	Count    int                `json:"count"`
}

// project listing surface; implemented by the projects repository
type Lister interface {
	List(ctx context.Context) ([]projects.Project, error)
}
