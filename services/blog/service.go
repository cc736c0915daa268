package blog

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	postRepo "artigadental/database/repository/post"
	"artigadental/models"
)

// Service manages blog posts for the public pages and the admin dashboard.
type Service interface {
	Create(ctx context.Context, p models.Post) (*models.Post, error)
	Update(ctx context.Context, p models.Post) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	GetPublished(ctx context.Context, slug string) (*models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}

// DefaultBlogService is the production implementation.
type DefaultBlogService struct {
	Repo postRepo.Repository
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	// Decompose and drop combining marks so "ó" slugs as "o", not a hyphen.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify derives a URL slug from a title: diacritics stripped, lowercased,
// everything else reduced to hyphen separation.
func Slugify(title string) string {
	s := strings.TrimSpace(title)
	if ascii, _, err := transform.String(deaccent, s); err == nil {
		s = ascii
	}
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *DefaultBlogService) Create(ctx context.Context, p models.Post) (*models.Post, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := s.Repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DefaultBlogService) Update(ctx context.Context, p models.Post) (*models.Post, error) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := s.Repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DefaultBlogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// GetPublished returns the post only if it is visible to the public site.
func (s *DefaultBlogService) GetPublished(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, postRepo.ErrNotFound
	}
	return post, nil
}

func (s *DefaultBlogService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return s.Repo.List(ctx, true)
}

func (s *DefaultBlogService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.Repo.List(ctx, false)
}
