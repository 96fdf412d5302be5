package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/shared/middleware"
	"github.com/DaSparky/daham-blogsite/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Session(c.Sessions, c.Config.Session),
		middleware.LoadUser(c.Sessions, c.UserService),
	)

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	// ========================================
	// PUBLIC ROUTES
	// ========================================
	router.GET("/", c.PostHandler.Index)
	router.GET("/about", c.PostHandler.About)
	router.GET("/post/:post_id", c.PostHandler.Show)
	// Anonymous comment attempts are flashed toward login inside
	// the handler, so the route itself stays open.
	router.POST("/post/:post_id", c.PostHandler.AddComment)

	router.GET("/register", c.UserHandler.ShowRegister)
	router.POST("/register", c.UserHandler.Register)
	router.GET("/login", c.UserHandler.ShowLogin)
	router.POST("/login", c.UserHandler.Login)

	// ========================================
	// AUTHENTICATED ROUTES
	// ========================================
	authed := router.Group("/", middleware.RequireAuth(c.Sessions))
	{
		authed.GET("/logout", c.UserHandler.Logout)
		authed.GET("/contact", c.ContactHandler.Show)
		authed.POST("/contact", c.ContactHandler.Send)
	}

	// ========================================
	// ADMIN ROUTES
	// ========================================
	admin := router.Group("/", middleware.RequireAdmin(c.Config.App.AdminUserID))
	{
		admin.GET("/new-post", c.PostHandler.New)
		admin.POST("/new-post", c.PostHandler.Create)
		admin.GET("/edit-post/:post_id", c.PostHandler.Edit)
		admin.POST("/edit-post/:post_id", c.PostHandler.Update)
		admin.GET("/delete/:post_id", c.PostHandler.Delete)
	}

	router.GET("/healthz", healthCheckHandler(c))

	return router
}

// healthCheckHandler reports database and session store health.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbErr := appCtx.DB.HealthCheck(c.Request.Context())
		sessionErr := appCtx.Sessions.Ping(c.Request.Context())

		statusCode, status := healthStatus(dbErr, sessionErr)

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": serviceStatus(dbErr),
				"sessions": serviceStatus(sessionErr),
			},
		})
	}
}

// healthStatus maps dependency checks to the probe response. Sessions
// are not best-effort here: login, flashes and the admin gate all need
// the store, so an unreachable store fails the probe like the database.
func healthStatus(dbErr, sessionErr error) (int, string) {
	if dbErr != nil || sessionErr != nil {
		return http.StatusServiceUnavailable, "degraded"
	}
	return http.StatusOK, "ok"
}

func serviceStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
