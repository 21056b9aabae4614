package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inkwell-app/inkwell-server/internal/model"
)

var _ model.BlogStore = (*BlogRepository)(nil)

type BlogRepository struct {
	db *Connection
}

func NewBlogRepository(db *Connection) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

const blogColumns = `id, title, content, tags, status, owner_id, created_at, updated_at`

func scanBlog(row pgx.Row) (model.Blog, error) {
	var blog model.Blog
	var id string
	var status string
	var tags []string
	var owner *string
	err := row.Scan(&id, &blog.Title, &blog.Content, &tags, &status, &owner, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return model.Blog{}, err
	}
	blog.ID = model.ID(id)
	blog.Tags = model.Tags(tags)
	blog.Status = model.BlogStatus(status)
	if owner != nil {
		blog.OwnerID = model.ID(*owner)
	}
	return blog, nil
}

// nullableOwner maps an unset owner to SQL NULL.
func nullableOwner(id model.ID) *string {
	if id.IsZero() {
		return nil
	}
	s := id.String()
	return &s
}

func (r *BlogRepository) Create(ctx context.Context, blog model.Blog) (model.Blog, error) {
	query := `INSERT INTO blogs (id, title, content, tags, status, owner_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + blogColumns

	saved, err := scanBlog(r.db.QueryRow(ctx, query,
		blog.ID.String(), blog.Title, blog.Content, []string(blog.Tags), string(blog.Status),
		nullableOwner(blog.OwnerID), blog.CreatedAt, blog.UpdatedAt,
	))
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	return saved, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id model.ID) (model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

func (r *BlogRepository) GetAll(ctx context.Context) ([]model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// Update overwrites the mutable fields of an existing blog. Concurrent
// updates race with last-write-wins semantics, there is no version
// check.
func (r *BlogRepository) Update(ctx context.Context, blog model.Blog) (model.Blog, error) {
	query := `UPDATE blogs SET title = $2, content = $3, tags = $4, status = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + blogColumns

	saved, err := scanBlog(r.db.QueryRow(ctx, query,
		blog.ID.String(), blog.Title, blog.Content, []string(blog.Tags), string(blog.Status),
		blog.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}

	return saved, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id model.ID) error {
	const query = `DELETE FROM blogs WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
