package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database at path. WAL and a busy timeout are set
// so the single writer does not fail under concurrent request handling.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return database, nil
}

// OpenInMemory is used by tests. Each call gets its own named in-memory
// database so tests stay isolated within the process.
func OpenInMemory() (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.NewString())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A shared-cache in-memory database disappears when the last connection
	// closes; pin one connection so the schema survives the pool.
	database.SetMaxOpenConns(1)
	return database, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		excerpt TEXT,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		category TEXT,
		tags TEXT,
		featured_image TEXT,
		is_published INTEGER NOT NULL DEFAULT 0,
		published_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS portfolio_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		problem TEXT,
		solution TEXT,
		tools TEXT,
		image TEXT,
		demo_url TEXT,
		github_url TEXT,
		is_featured INTEGER NOT NULL DEFAULT 0,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_name TEXT NOT NULL,
		client_title TEXT,
		client_company TEXT,
		client_image TEXT,
		testimonial TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 5,
		project_type TEXT,
		is_featured INTEGER NOT NULL DEFAULT 0,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT,
		service TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		notes TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_published ON blog_posts(is_published, published_at)`,
	`CREATE INDEX IF NOT EXISTS idx_portfolio_items_order ON portfolio_items(display_order)`,
	`CREATE INDEX IF NOT EXISTS idx_testimonials_featured ON testimonials(is_featured, display_order)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_created ON inquiries(created_at)`,
}

// Migrate creates the tables and indexes the controllers rely on.
func Migrate(ctx context.Context, database *sql.DB) error {
	for _, stmt := range schema {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
