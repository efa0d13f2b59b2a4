package ports

import (
	"context"
	"time"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
)

// PostView is a post with its author resolved to a display name.
// Author is "Unknown" when the owning identity no longer exists.
type PostView struct {
	ID        string
	Title     string
	Body      string
	Author    string
	CreatedAt time.Time
}

type UpdatePostInput struct {
	// Empty fields keep the stored value (partial merge).
	Title string
	Body  string
}

type ContentService interface {
	List(ctx context.Context, actor policy.Actor) ([]PostView, error)
	Create(ctx context.Context, actor policy.Actor, title, body string) (*domain.Post, error)
	Update(ctx context.Context, actor policy.Actor, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor policy.Actor, id string) error
}
