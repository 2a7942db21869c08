package portfolio

import (
	"context"
	"database/sql"

	"studiosite-backend/internal/db"
)

type Repository interface {
	Insert(ctx context.Context, item Item) (int64, error)
	Update(ctx context.Context, id int64, item Item) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Item, error)
}

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{db: database}
}

func (r *SQLRepository) Insert(ctx context.Context, item Item) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolio_items (title, slug, category, description, problem,
			solution, tools, image, demo_url, github_url, is_featured,
			display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title, item.Slug, item.Category, db.NullString(item.Description),
		db.NullString(item.Problem), db.NullString(item.Solution),
		db.NullString(item.Tools), db.NullString(item.Image),
		db.NullString(item.DemoURL), db.NullString(item.GithubURL),
		boolToInt(item.IsFeatured), item.DisplayOrder,
		db.FormatTime(item.CreatedAt), db.FormatTime(item.UpdatedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) Update(ctx context.Context, id int64, item Item) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE portfolio_items SET title = ?, slug = ?, category = ?,
			description = ?, problem = ?, solution = ?, tools = ?, image = ?,
			demo_url = ?, github_url = ?, is_featured = ?, display_order = ?,
			updated_at = ?
		WHERE id = ?`,
		item.Title, item.Slug, item.Category, db.NullString(item.Description),
		db.NullString(item.Problem), db.NullString(item.Solution),
		db.NullString(item.Tools), db.NullString(item.Image),
		db.NullString(item.DemoURL), db.NullString(item.GithubURL),
		boolToInt(item.IsFeatured), item.DisplayOrder,
		db.FormatTime(item.UpdatedAt), id)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = ?`, id)
	return err
}

func (r *SQLRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, slug, category, description, problem, solution, tools,
			image, demo_url, github_url, is_featured, display_order, created_at, updated_at
		FROM portfolio_items ORDER BY display_order ASC, created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		var description, problem, solution, tools, image, demoURL, githubURL sql.NullString
		var featured int
		var createdAt, updatedAt string
		if err := rows.Scan(&item.ID, &item.Title, &item.Slug, &item.Category,
			&description, &problem, &solution, &tools, &image, &demoURL,
			&githubURL, &featured, &item.DisplayOrder, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		item.Description = db.StringPtr(description)
		item.Problem = db.StringPtr(problem)
		item.Solution = db.StringPtr(solution)
		item.Tools = db.StringPtr(tools)
		item.Image = db.StringPtr(image)
		item.DemoURL = db.StringPtr(demoURL)
		item.GithubURL = db.StringPtr(githubURL)
		item.IsFeatured = featured != 0
		item.CreatedAt = db.ParseTime(createdAt)
		item.UpdatedAt = db.ParseTime(updatedAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
