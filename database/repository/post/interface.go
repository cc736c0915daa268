package postRepo

import (
	"context"
	"errors"

	"artigadental/models"
)

// ErrSlugTaken is returned when a create or update collides with another
// post's slug.
var ErrSlugTaken = errors.New("post slug already in use")

// ErrNotFound is returned when no post matches the given id or slug.
var ErrNotFound = errors.New("post not found")

// Repository is the persistence boundary for blog posts.
type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	// List returns posts newest first; publishedOnly filters drafts out.
	List(ctx context.Context, publishedOnly bool) ([]models.Post, error)
}
