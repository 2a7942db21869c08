package blog

import (
	"context"
	"database/sql"

	"studiosite-backend/internal/db"
)

type Repository interface {
	Insert(ctx context.Context, post Post) (int64, error)
	Update(ctx context.Context, id int64, post Post) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (Post, error)
	ListPublished(ctx context.Context) ([]Summary, error)
	ListAll(ctx context.Context) ([]Post, error)
}

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{db: database}
}

const postColumns = `id, title, slug, excerpt, content, author, category, tags,
	featured_image, is_published, published_at, created_at, updated_at`

func (r *SQLRepository) Insert(ctx context.Context, post Post) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (title, slug, excerpt, content, author, category,
			tags, featured_image, is_published, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.Title, post.Slug, db.NullString(post.Excerpt), post.Content,
		post.Author, db.NullString(post.Category), db.NullString(post.Tags),
		db.NullString(post.FeaturedImage), boolToInt(post.IsPublished),
		db.NullTime(post.PublishedAt), db.FormatTime(post.CreatedAt),
		db.FormatTime(post.UpdatedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) Update(ctx context.Context, id int64, post Post) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, slug = ?, excerpt = ?, content = ?,
			author = ?, category = ?, tags = ?, featured_image = ?,
			is_published = ?, published_at = ?, updated_at = ?
		WHERE id = ?`,
		post.Title, post.Slug, db.NullString(post.Excerpt), post.Content,
		post.Author, db.NullString(post.Category), db.NullString(post.Tags),
		db.NullString(post.FeaturedImage), boolToInt(post.IsPublished),
		db.NullTime(post.PublishedAt), db.FormatTime(post.UpdatedAt), id)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	return err
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts WHERE id = ?`, id)
	return scanPost(row)
}

func (r *SQLRepository) GetPublishedBySlug(ctx context.Context, slug string) (Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts WHERE slug = ? AND is_published = 1`, slug)
	return scanPost(row)
}

func (r *SQLRepository) ListPublished(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, slug, excerpt, author, category, tags, featured_image, published_at
		FROM blog_posts WHERE is_published = 1 ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		var excerpt, category, tags, image, publishedAt sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &excerpt, &s.Author,
			&category, &tags, &image, &publishedAt); err != nil {
			return nil, err
		}
		s.Excerpt = db.StringPtr(excerpt)
		s.Category = db.StringPtr(category)
		s.Tags = db.StringPtr(tags)
		s.FeaturedImage = db.StringPtr(image)
		s.PublishedAt = db.TimePtr(publishedAt)
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, post)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var post Post
	var excerpt, category, tags, image, publishedAt sql.NullString
	var published int
	var createdAt, updatedAt string
	if err := row.Scan(&post.ID, &post.Title, &post.Slug, &excerpt, &post.Content,
		&post.Author, &category, &tags, &image, &published, &publishedAt,
		&createdAt, &updatedAt); err != nil {
		return Post{}, err
	}
	post.Excerpt = db.StringPtr(excerpt)
	post.Category = db.StringPtr(category)
	post.Tags = db.StringPtr(tags)
	post.FeaturedImage = db.StringPtr(image)
	post.IsPublished = published != 0
	post.PublishedAt = db.TimePtr(publishedAt)
	post.CreatedAt = db.ParseTime(createdAt)
	post.UpdatedAt = db.ParseTime(updatedAt)
	return post, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
