// Seeds sample content so the site has something to render on a fresh
// database, plus an admin account when ADMIN_PASSWORD is set.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"studiosite-backend/internal/admins"
	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/blog"
	"studiosite-backend/internal/config"
	"studiosite-backend/internal/db"
	"studiosite-backend/internal/portfolio"
	"studiosite-backend/internal/testimonials"
	"studiosite-backend/internal/utils"
)

type seedItem struct {
	Title    string
	Category string
	Problem  string
	Solution string
	Tools    string
	Featured bool
}

var portfolioSeed = []seedItem{
	{
		Title:    "FinTech Dashboard",
		Category: "Full Stack Development",
		Problem:  "Complex financial data needed intuitive visualization",
		Solution: "Real-time analytics dashboard with interactive charts",
		Tools:    "React, TypeScript, Go, PostgreSQL",
		Featured: true,
	},
	{
		Title:    "Healthcare Portal",
		Category: "UI/UX Design",
		Problem:  "Patient management system lacked user-friendly interface",
		Solution: "Intuitive portal with appointment scheduling and records",
		Tools:    "Figma, React, Tailwind",
		Featured: true,
	},
	{
		Title:    "E-Commerce Platform",
		Category: "Full Stack",
		Problem:  "Retail business needed modern online presence",
		Solution: "Feature-rich e-commerce with payment integration",
		Tools:    "Next.js, Stripe, Redis",
	},
	{
		Title:    "Brand Identity Suite",
		Category: "Branding",
		Problem:  "Startup needed complete brand from scratch",
		Solution: "Comprehensive brand guidelines and visual system",
		Tools:    "Illustrator, Figma",
	},
}

type seedTestimonial struct {
	Name     string
	Role     string
	Company  string
	Text     string
	Rating   int
	Project  string
	Featured bool
}

var testimonialSeed = []seedTestimonial{
	{
		Name:     "Sarah Mitchell",
		Role:     "Product Lead",
		Company:  "Northwind Health",
		Text:     "The portal redesign cut our support tickets in half. The team kept us in the loop at every step.",
		Rating:   5,
		Project:  "UI/UX Design",
		Featured: true,
	},
	{
		Name:     "David Okonkwo",
		Role:     "CTO",
		Company:  "LedgerLine",
		Text:     "They shipped a production dashboard in six weeks. Clean code, clean handover.",
		Rating:   5,
		Project:  "Full Stack Development",
		Featured: true,
	},
	{
		Name:    "Elena Petrova",
		Role:    "Founder",
		Company: "Bloom & Co",
		Text:    "Our brand finally feels like us. Great eye for detail.",
		Rating:  4,
		Project: "Branding",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		log.Fatal(err)
	}

	seedPortfolio(ctx, database, cfg)
	seedTestimonials(ctx, database, cfg)
	seedBlog(ctx, database, cfg)
	seedAdmin(ctx, database, cfg)

	log.Println("seed complete")
}

func seedPortfolio(ctx context.Context, database *sql.DB, cfg *config.Config) {
	repo := portfolio.NewRepository(database)
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("portfolio already seeded, skipping")
		return
	}

	now := time.Now().In(cfg.Timezone)
	for i, item := range portfolioSeed {
		problem, solution, tools := item.Problem, item.Solution, item.Tools
		id, err := repo.Insert(ctx, portfolio.Item{
			Title:        item.Title,
			Slug:         utils.Slugify(item.Title),
			Category:     item.Category,
			Problem:      &problem,
			Solution:     &solution,
			Tools:        &tools,
			IsFeatured:   item.Featured,
			DisplayOrder: i,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("portfolio item %d: %s", id, item.Title)
	}
}

func seedTestimonials(ctx context.Context, database *sql.DB, cfg *config.Config) {
	repo := testimonials.NewRepository(database)
	existing, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("testimonials already seeded, skipping")
		return
	}

	now := time.Now().In(cfg.Timezone)
	for i, item := range testimonialSeed {
		role, company, project := item.Role, item.Company, item.Project
		id, err := repo.Insert(ctx, testimonials.Testimonial{
			ClientName:    item.Name,
			ClientTitle:   &role,
			ClientCompany: &company,
			Testimonial:   item.Text,
			Rating:        item.Rating,
			ProjectType:   &project,
			IsFeatured:    item.Featured,
			DisplayOrder:  i,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("testimonial %d: %s", id, item.Name)
	}
}

func seedBlog(ctx context.Context, database *sql.DB, cfg *config.Config) {
	repo := blog.NewRepository(database)
	existing, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("blog already seeded, skipping")
		return
	}

	now := time.Now().In(cfg.Timezone)
	title := "Designing Dashboards People Actually Use"
	excerpt := "Lessons from a year of building analytics interfaces for non-technical teams."
	category := "Design"
	tags := "dashboards,ux,analytics"
	id, err := repo.Insert(ctx, blog.Post{
		Title:       title,
		Slug:        utils.Slugify(title),
		Excerpt:     &excerpt,
		Content:     "Most dashboards fail before the first chart renders: they answer questions nobody asked. Start from the decisions your users make each week and work backwards to the data...",
		Author:      "Studio Team",
		Category:    &category,
		Tags:        &tags,
		IsPublished: true,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("blog post %d: %s", id, title)
}

func seedAdmin(ctx context.Context, database *sql.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	repo := admins.NewRepository(database)
	if _, err := repo.GetByUsername(ctx, cfg.AdminUser); err == nil {
		log.Println("admin user exists, skipping")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Fatal(err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	id, err := repo.Create(ctx, cfg.AdminUser, hash, time.Now().In(cfg.Timezone))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("admin user %d: %s", id, cfg.AdminUser)
}
