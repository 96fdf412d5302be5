package container

import (
	"context"
	"fmt"
	"time"

	"github.com/DaSparky/daham-blogsite/internal/config"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/database"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/email"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
	"github.com/DaSparky/daham-blogsite/internal/shared/render"
	"github.com/DaSparky/daham-blogsite/pkg/logger"

	"github.com/DaSparky/daham-blogsite/internal/domains/comment"
	commentRepo "github.com/DaSparky/daham-blogsite/internal/domains/comment/repository"
	commentService "github.com/DaSparky/daham-blogsite/internal/domains/comment/service"
	contactHandler "github.com/DaSparky/daham-blogsite/internal/domains/contact/handler"
	"github.com/DaSparky/daham-blogsite/internal/domains/post"
	postHandler "github.com/DaSparky/daham-blogsite/internal/domains/post/handler"
	postRepo "github.com/DaSparky/daham-blogsite/internal/domains/post/repository"
	postService "github.com/DaSparky/daham-blogsite/internal/domains/post/service"
	"github.com/DaSparky/daham-blogsite/internal/domains/user"
	userHandler "github.com/DaSparky/daham-blogsite/internal/domains/user/handler"
	userRepo "github.com/DaSparky/daham-blogsite/internal/domains/user/repository"
	userService "github.com/DaSparky/daham-blogsite/internal/domains/user/service"
)

// Container is the root of the dependency graph: infrastructure,
// repositories, services and handlers, wired once at startup.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Sessions session.Store
	Mailer   email.EmailService
	Renderer *render.Renderer

	UserRepo    user.Repository
	PostRepo    post.Repository
	CommentRepo comment.Repository

	UserService    user.Service
	PostService    post.Service
	CommentService comment.Service

	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	ContactHandler *contactHandler.ContactHandler
}

// NewContainer loads config, connects infrastructure and wires every
// layer. Any failure here aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// ========================================
	// INFRASTRUCTURE
	// ========================================
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	sessions := session.NewRedisStore(&cfg.Redis,
		time.Duration(cfg.Session.TTLHours)*time.Hour)
	if err := sessions.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect session store: %w", err)
	}

	mailer := email.NewSMTPEmailService(&cfg.Mail)
	renderer := render.New(sessions, cfg.App.AdminUserID)

	// ========================================
	// REPOSITORIES
	// ========================================
	users := userRepo.NewPostgresRepository(db.Pool)
	posts := postRepo.NewPostgresRepository(db.Pool)
	comments := commentRepo.NewPostgresRepository(db.Pool)

	// ========================================
	// SERVICES
	// ========================================
	userSvc := userService.NewUserService(users)
	postSvc := postService.NewPostService(posts, comments)
	commentSvc := commentService.NewCommentService(comments)

	// ========================================
	// HANDLERS
	// ========================================
	c := &Container{
		Config:   cfg,
		DB:       db,
		Sessions: sessions,
		Mailer:   mailer,
		Renderer: renderer,

		UserRepo:    users,
		PostRepo:    posts,
		CommentRepo: comments,

		UserService:    userSvc,
		PostService:    postSvc,
		CommentService: commentSvc,

		UserHandler:    userHandler.NewUserHandler(userSvc, sessions, renderer),
		PostHandler:    postHandler.NewPostHandler(postSvc, commentSvc, renderer),
		ContactHandler: contactHandler.NewContactHandler(mailer, renderer),
	}

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
