package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-app/inkwell-server/internal/apierrors"
	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// Blog enforces the blog document lifecycle: draft saves, publishing,
// ownership checks, and deletion.
type Blog struct {
	blogStore model.BlogStore
	logger    *logger.Logger
}

func NewBlog(blogStore model.BlogStore, logger *logger.Logger) *Blog {
	return &Blog{
		blogStore: blogStore,
		logger:    logger,
	}
}

// SaveDraft creates or updates a draft. Without an identifier a new
// draft is created owned by the caller; with one, the existing blog is
// overwritten in place. Saving a draft never changes the blog's
// status, so re-saving a published blog keeps it published. The bool
// result reports whether a new blog was created.
func (s *Blog) SaveDraft(ctx context.Context, params model.SaveBlogParams, callerID model.ID) (model.Blog, bool, error) {
	return s.save(ctx, params, callerID, false)
}

// Publish is SaveDraft with the status forced to published. Publishing
// an already-published blog is allowed and refreshes its content and
// timestamp.
func (s *Blog) Publish(ctx context.Context, params model.SaveBlogParams, callerID model.ID) (model.Blog, bool, error) {
	return s.save(ctx, params, callerID, true)
}

func (s *Blog) save(ctx context.Context, params model.SaveBlogParams, callerID model.ID, publish bool) (model.Blog, bool, error) {
	tags := params.Tags.Normalize()

	if params.RawID == "" {
		status := model.BlogStatusDraft
		if publish {
			status = model.BlogStatusPublished
		}

		now := time.Now()
		blog := model.Blog{
			ID:        model.NewID(),
			Title:     params.Title,
			Content:   params.Content,
			Tags:      tags,
			Status:    status,
			OwnerID:   callerID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		saved, err := s.blogStore.Create(ctx, blog)
		if err != nil {
			return model.Blog{}, false, fmt.Errorf("failed to create blog: %w", err)
		}

		s.logger.Info("Blog service: blog created",
			"blog_id", saved.ID,
			"status", saved.Status,
			"owner_id", saved.OwnerID)

		return saved, true, nil
	}

	id, err := model.ParseID(params.RawID)
	if err != nil {
		return model.Blog{}, false, apierrors.NewErrInvalidBlogID()
	}

	blog, err := s.blogStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Blog{}, false, apierrors.NewErrBlogNotFound()
	}
	if err != nil {
		return model.Blog{}, false, fmt.Errorf("failed to get blog by id: %w", err)
	}

	if !blog.MutableBy(callerID) {
		return model.Blog{}, false, apierrors.NewErrNotBlogOwner("edit")
	}

	blog.Title = params.Title
	blog.Content = params.Content
	blog.Tags = tags
	if publish {
		blog.Status = model.BlogStatusPublished
	}
	blog.UpdatedAt = time.Now()

	saved, err := s.blogStore.Update(ctx, blog)
	if errors.Is(err, model.ErrNotFound) {
		return model.Blog{}, false, apierrors.NewErrBlogNotFound()
	}
	if err != nil {
		return model.Blog{}, false, fmt.Errorf("failed to update blog: %w", err)
	}

	s.logger.Info("Blog service: blog updated",
		"blog_id", saved.ID,
		"status", saved.Status)

	return saved, false, nil
}

// GetAll returns every blog, drafts included, newest update first.
// Filtering by status or owner is left to the consumer.
func (s *Blog) GetAll(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}

	return blogs, nil
}

// GetByID validates the raw identifier before touching storage.
func (s *Blog) GetByID(ctx context.Context, rawID string) (model.Blog, error) {
	id, err := model.ParseID(rawID)
	if err != nil {
		return model.Blog{}, apierrors.NewErrInvalidBlogID()
	}

	blog, err := s.blogStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Blog{}, apierrors.NewErrBlogNotFound()
	}
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

// Delete permanently removes a blog after an ownership check. There is
// no tombstone.
func (s *Blog) Delete(ctx context.Context, rawID string, callerID model.ID) error {
	id, err := model.ParseID(rawID)
	if err != nil {
		return apierrors.NewErrInvalidBlogID()
	}

	blog, err := s.blogStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrBlogNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get blog by id: %w", err)
	}

	if !blog.MutableBy(callerID) {
		return apierrors.NewErrNotBlogOwner("delete")
	}

	if err := s.blogStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrBlogNotFound()
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	s.logger.Info("Blog service: blog deleted", "blog_id", id)

	return nil
}
