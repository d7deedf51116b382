package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meetup-api/internal/domain/user"
	"meetup-api/internal/handler/api"
	"meetup-api/internal/handler/middleware"
	"meetup-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	meetupHandler *api.MeetupHandler,
	subscriptionHandler *api.SubscriptionHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, meetupHandler, subscriptionHandler, notificationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	meetupHandler *api.MeetupHandler,
	subscriptionHandler *api.SubscriptionHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: authHandler.Register},
			})
		}

		meetups := apiGroup.Group("/meetups")
		{
			addRoutes(meetups, []route{
				{Method: http.MethodGet, Path: "", Handler: meetupHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: meetupHandler.Get},
			})

			meetupsAuth := meetups.Group("")
			meetupsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(meetupsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: meetupHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: meetupHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: meetupHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/subscriptions", Handler: subscriptionHandler.Subscribe},
				{Method: http.MethodDelete, Path: "/:id/subscriptions", Handler: subscriptionHandler.Unsubscribe},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodGet, Path: "", Handler: subscriptionHandler.List},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "/jobs", Handler: notificationHandler.ListJobs},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
