package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

const unknownAuthor = "Unknown"

// ContentService implements content CRUD under the authorization
// policy. Existence is always resolved before ownership so a missing
// post surfaces as not-found, never as forbidden.
type ContentService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	audit  ports.AuditService
	logger zerolog.Logger
}

func NewContentService(posts ports.PostRepository, users ports.UserRepository, audit ports.AuditService, logger zerolog.Logger) *ContentService {
	return &ContentService{posts: posts, users: users, audit: audit, logger: logger}
}

func (s *ContentService) List(ctx context.Context, actor policy.Actor) ([]ports.PostView, error) {
	if err := policy.Decide(actor, policy.ActionReadContent, ""); err != nil {
		return nil, err
	}

	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve author names once per distinct id; deleted authors render
	// as "Unknown" rather than failing the listing.
	names := make(map[string]string)
	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		name, ok := names[p.AuthorID]
		if !ok {
			name = unknownAuthor
			if u, err := s.users.FindByID(ctx, p.AuthorID); err == nil {
				name = u.Username
			}
			names[p.AuthorID] = name
		}
		views = append(views, ports.PostView{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			Author:    name,
			CreatedAt: p.CreatedAt,
		})
	}
	return views, nil
}

func (s *ContentService) Create(ctx context.Context, actor policy.Actor, title, body string) (*domain.Post, error) {
	if err := policy.Decide(actor, policy.ActionCreateContent, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.posts.Create(ctx, &domain.Post{
		Title:     title,
		Body:      body,
		AuthorID:  actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", actor.ID).Msg("post created")
	s.audit.Record(ctx, actor.ID, fmt.Sprintf("Post %q created", created.Title))
	return created, nil
}

// Update applies a partial merge: empty input fields keep the stored
// value. The author reference is never touched.
func (s *ContentService) Update(ctx context.Context, actor policy.Actor, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Decide(actor, policy.ActionUpdateContent, post.AuthorID); err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Body != "" {
		post.Body = input.Body
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Str("actor_id", actor.ID).Msg("post updated")
	s.audit.Record(ctx, actor.ID, fmt.Sprintf("Post %q updated", post.Title))
	return post, nil
}

func (s *ContentService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Decide(actor, policy.ActionDeleteContent, post.AuthorID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("actor_id", actor.ID).Msg("post deleted")
	s.audit.Record(ctx, actor.ID, fmt.Sprintf("Post %q deleted", post.Title))
	return nil
}
