package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiosite-backend/internal/admins"
	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/blog"
	"studiosite-backend/internal/config"
	"studiosite-backend/internal/db"
	"studiosite-backend/internal/handlers"
	"studiosite-backend/internal/inquiries"
	"studiosite-backend/internal/middleware"
	"studiosite-backend/internal/portfolio"
	"studiosite-backend/internal/session"
	"studiosite-backend/internal/testimonials"
	"studiosite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(cfg.SQLitePath)
	if err != nil {
		logger.Error("sqlite open failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("sqlite ready", slog.String("path", cfg.SQLitePath))

	var sessions session.Registry = session.NewMemory()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisSessions *session.RedisRegistry
		if cfg.RedisURL != "" {
			redisSessions, err = session.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisSessions = session.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisSessions.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		sessions = redisSessions
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "studiosite-backend",
		}
	}

	val := validation.New()

	server := &handlers.Server{
		Cfg:      cfg,
		Val:      val,
		Log:      logger,
		JWT:      jwtManager,
		Sessions: sessions,
		Admins:   admins.NewRepository(database),
	}

	blogHandler := blog.NewHandler(blog.NewService(blog.NewRepository(database), cfg.Timezone), val, logger)
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(portfolio.NewRepository(database), cfg.Timezone), val, logger)
	testimonialsHandler := testimonials.NewHandler(testimonials.NewService(testimonials.NewRepository(database), cfg.Timezone), val, logger)
	inquiriesHandler := inquiries.NewHandler(inquiries.NewService(inquiries.NewRepository(database), cfg.Timezone), val, logger)

	adminOnly := middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.Route("/inquiries", func(ir chi.Router) {
			ir.Post("/", inquiriesHandler.Create)
			ir.Group(func(protected chi.Router) {
				protected.Use(adminOnly)
				protected.Get("/", inquiriesHandler.AdminList)
				protected.Patch("/{id}", inquiriesHandler.AdminUpdate)
				protected.Delete("/{id}", inquiriesHandler.AdminDelete)
			})
		})

		api.Route("/blog", func(br chi.Router) {
			br.Get("/", blogHandler.PublicList)
			// Registered before the slug wildcard; chi prefers static segments
			// but the gate must still wrap only this route.
			br.With(adminOnly).Get("/admin/all", blogHandler.AdminList)
			br.Get("/{slug}", blogHandler.PublicGetBySlug)
			br.Group(func(protected chi.Router) {
				protected.Use(adminOnly)
				protected.Post("/", blogHandler.AdminCreate)
				protected.Patch("/{id}", blogHandler.AdminUpdate)
				protected.Delete("/{id}", blogHandler.AdminDelete)
			})
		})

		api.Route("/portfolio", func(pr chi.Router) {
			pr.Get("/", portfolioHandler.List)
			pr.Group(func(protected chi.Router) {
				protected.Use(adminOnly)
				protected.Post("/", portfolioHandler.AdminCreate)
				protected.Patch("/{id}", portfolioHandler.AdminUpdate)
				protected.Delete("/{id}", portfolioHandler.AdminDelete)
			})
		})

		api.Route("/testimonials", func(tr chi.Router) {
			tr.Get("/", testimonialsHandler.PublicList)
			tr.With(adminOnly).Get("/admin/all", testimonialsHandler.AdminList)
			tr.Group(func(protected chi.Router) {
				protected.Use(adminOnly)
				protected.Post("/", testimonialsHandler.AdminCreate)
				protected.Patch("/{id}", testimonialsHandler.AdminUpdate)
				protected.Delete("/{id}", testimonialsHandler.AdminDelete)
			})
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// Important (chi): middlewares must be attached before defining routes.
			// Login/refresh/logout stay public; the rest sits behind the gate.
			admin.Group(func(protected chi.Router) {
				protected.Use(adminOnly)
				protected.Get("/me", server.AdminMe)
				protected.Post("/users", server.AdminCreateUser)
				protected.Patch("/users/{id}/password", server.AdminUpdateUserPassword)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
