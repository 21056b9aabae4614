package model

import (
	"context"
	"time"
)

// BlogStore defines persistence operations for blogs.
type BlogStore interface {
	Create(ctx context.Context, blog Blog) (Blog, error)
	GetByID(ctx context.Context, id ID) (Blog, error)
	GetAll(ctx context.Context) ([]Blog, error)
	Update(ctx context.Context, blog Blog) (Blog, error)
	Delete(ctx context.Context, id ID) error
}

// BlogStatus enumerates the blog lifecycle states.
type BlogStatus string

const (
	// BlogStatusDraft is a blog not yet publicly visible.
	BlogStatusDraft BlogStatus = "draft"
	// BlogStatusPublished is a publicly visible blog.
	BlogStatusPublished BlogStatus = "published"
)

// Blog represents a stored blog document. An empty OwnerID means the
// blog has no owner.
type Blog struct {
	ID        ID
	Title     string
	Content   string
	Tags      Tags
	Status    BlogStatus
	OwnerID   ID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MutableBy reports whether caller may edit or delete the blog. A blog
// without an owner is mutable by any caller. This is the single place
// deciding mutation authorization.
func (b Blog) MutableBy(caller ID) bool {
	return b.OwnerID.IsZero() || b.OwnerID == caller
}

// SaveBlogParams contains the write input accepted by draft and
// publish operations. RawID is the identifier as supplied by the
// caller, empty for creation.
type SaveBlogParams struct {
	RawID   string
	Title   string
	Content string
	Tags    Tags
}
