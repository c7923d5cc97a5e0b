// Package posts owns authored content and its threaded comments. Reads are
// public; writes require the acting account to own the post.
package posts

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"pulse/storage"
	"pulse/storage/models"
)

type Store interface {
	CreatePost(ctx context.Context, authorID int64, title, content string) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context, limit int32) ([]models.Post, error)
	UpdatePost(ctx context.Context, id int64, title, content *string) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, postID, authorID int64, content string) (models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipientID, actorID int64, verb string, target *models.TargetRef) error
}

type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// CreatePost stores a new post. The author is always the acting account,
// never client-supplied.
func (s *Service) CreatePost(ctx context.Context, actorID int64, title, content string) (models.Post, error) {
	if err := validateText("title", title); err != nil {
		return models.Post{}, err
	}
	if err := validateText("content", content); err != nil {
		return models.Post{}, err
	}
	return s.store.CreatePost(ctx, actorID, title, content)
}

// UpdatePost applies the non-nil fields and bumps updated_at. Only the
// author may update.
func (s *Service) UpdatePost(ctx context.Context, actorID, postID int64, title, content *string) (models.Post, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if post.AuthorID != actorID {
		return models.Post{}, fmt.Errorf("post %d: %w", postID, storage.ErrPermission)
	}
	if title != nil {
		if err := validateText("title", *title); err != nil {
			return models.Post{}, err
		}
	}
	if content != nil {
		if err := validateText("content", *content); err != nil {
			return models.Post{}, err
		}
	}
	return s.store.UpdatePost(ctx, postID, title, content)
}

// DeletePost removes the post together with its comments and likes. Only
// the author may delete.
func (s *Service) DeletePost(ctx context.Context, actorID, postID int64) error {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return fmt.Errorf("post %d: %w", postID, storage.ErrPermission)
	}
	return s.store.DeletePost(ctx, postID)
}

// CreateComment attaches a comment authored by the actor and notifies the
// post author.
func (s *Service) CreateComment(ctx context.Context, actorID, postID int64, content string) (models.Comment, error) {
	if err := validateText("content", content); err != nil {
		return models.Comment{}, err
	}
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}

	comment, err := s.store.CreateComment(ctx, postID, actorID, content)
	if err != nil {
		return models.Comment{}, err
	}

	target := &models.TargetRef{Type: models.TargetComment, ID: comment.ID}
	if err := s.notifier.Notify(ctx, post.AuthorID, actorID, models.VerbCommented, target); err != nil {
		log.Errorf("Error notifying comment %d on post %d: %v", comment.ID, postID, err)
	}
	return comment, nil
}

func (s *Service) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return s.store.GetPost(ctx, postID)
}

func (s *Service) ListPosts(ctx context.Context, limit int32) ([]models.Post, error) {
	return s.store.ListPosts(ctx, limit)
}

func (s *Service) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.store.ListComments(ctx, postID)
}

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be empty", storage.ErrValidation, field)
	}
	return nil
}
