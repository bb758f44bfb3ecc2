package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/ignatzorin/creative-network/internal/config"
	"github.com/ignatzorin/creative-network/internal/http/middleware"
	"github.com/ignatzorin/creative-network/internal/interface/http/handler"
)

// Handlers собирает все HTTP-хэндлеры приложения.
type Handlers struct {
	Auth         *handler.AuthHandler
	Post         *handler.PostHandler
	Follow       *handler.FollowHandler
	Profile      *handler.ProfileHandler
	Job          *handler.JobHandler
	Event        *handler.EventHandler
	Service      *handler.ServiceHandler
	MoodBoard    *handler.MoodBoardHandler
	Notification *handler.NotificationHandler
	Conversation *handler.ConversationHandler
	Upload       *handler.UploadHandler
	Health       *handler.HealthHandler
	WS           *handler.WSHandler
	Seed         *handler.SeedHandler // только development
}

// Limiters — хранилища счётчиков для общего лимита и для /auth.
type Limiters struct {
	API  limiter.Store
	Auth limiter.Store
}

func SetupRouter(cfg *config.Config, h Handlers, tokens middleware.TokenParser, limiters Limiters) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)
	if cfg.Storage.Driver == config.StorageLocal {
		r.StaticFS("/media", http.Dir(cfg.Storage.LocalPath))
	}

	api := r.Group("/api")
	if limiters.API != nil {
		api.Use(middleware.RateLimitMiddleware(limiters.API, cfg.RateLimitLimit, cfg.RateLimitPeriod))
	}

	authGroup := api.Group("/auth")
	if limiters.Auth != nil {
		authGroup.Use(middleware.RateLimitMiddleware(limiters.Auth, cfg.AuthRateLimit, cfg.RateLimitPeriod))
	}
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	api.GET("/ws", h.WS.Handle)

	if h.Seed != nil && cfg.Env == "development" {
		api.POST("/seed", h.Seed.Seed)
	}

	// Публичные маршруты: актор нужен только для персональных флагов.
	public := api.Group("/")
	public.Use(middleware.OptionalAuth(tokens))
	{
		public.GET("/posts", h.Post.Feed)
		public.GET("/posts/:id", middleware.UUIDValidator("id"), h.Post.Get)
		public.GET("/posts/:id/comments", middleware.UUIDValidator("id"), h.Post.Comments)
		public.GET("/posts/:id/likes", middleware.UUIDValidator("id"), h.Post.LikeStatus)
		public.POST("/posts/likes/counts", h.Post.LikeCounts)
		public.POST("/follows/statuses", h.Follow.Statuses)

		public.GET("/users/:id", middleware.UUIDValidator("id"), h.Profile.Public)
		public.GET("/users/:id/posts", middleware.UUIDValidator("id"), h.Profile.UserPosts)
		public.GET("/users/:id/portfolio", middleware.UUIDValidator("id"), h.Profile.UserPortfolio)
		public.GET("/users/:id/services", middleware.UUIDValidator("id"), h.Profile.UserServices)
		public.GET("/people", h.Profile.People)

		public.GET("/jobs", h.Job.List)
		public.GET("/jobs/:id", middleware.UUIDValidator("id"), h.Job.Get)
		public.GET("/events", h.Event.List)
		public.GET("/events/:id", middleware.UUIDValidator("id"), h.Event.Get)
	}

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/posts", h.Post.Create)
		protected.PUT("/posts/:id", middleware.UUIDValidator("id"), h.Post.Update)
		protected.DELETE("/posts/:id", middleware.UUIDValidator("id"), h.Post.Delete)
		protected.POST("/posts/:id/like", middleware.UUIDValidator("id"), h.Post.ToggleLike)
		protected.POST("/posts/:id/bookmark", middleware.UUIDValidator("id"), h.Post.ToggleBookmark)
		protected.GET("/posts/:id/bookmark", middleware.UUIDValidator("id"), h.Post.BookmarkStatus)
		protected.GET("/posts/:id/saved", middleware.UUIDValidator("id"), h.MoodBoard.Saved)
		protected.GET("/bookmarks", h.Post.Bookmarks)

		protected.POST("/comments", h.Post.CreateComment)
		protected.DELETE("/comments/:id", middleware.UUIDValidator("id"), h.Post.DeleteComment)

		protected.POST("/users/:id/follow", middleware.UUIDValidator("id"), h.Follow.Follow)
		protected.DELETE("/users/:id/follow", middleware.UUIDValidator("id"), h.Follow.Unfollow)

		protected.GET("/profile", h.Profile.Me)
		protected.PUT("/profile", h.Profile.UpdateMe)
		protected.POST("/portfolio", h.Profile.CreatePortfolioItem)
		protected.PUT("/portfolio/:id", middleware.UUIDValidator("id"), h.Profile.UpdatePortfolioItem)
		protected.DELETE("/portfolio/:id", middleware.UUIDValidator("id"), h.Profile.DeletePortfolioItem)

		protected.POST("/jobs", h.Job.Create)
		protected.PUT("/jobs/:id", middleware.UUIDValidator("id"), h.Job.Update)
		protected.DELETE("/jobs/:id", middleware.UUIDValidator("id"), h.Job.Delete)

		protected.POST("/events", h.Event.Create)
		protected.PUT("/events/:id", middleware.UUIDValidator("id"), h.Event.Update)
		protected.DELETE("/events/:id", middleware.UUIDValidator("id"), h.Event.Delete)

		protected.GET("/moodboards", h.MoodBoard.List)
		protected.POST("/moodboards", h.MoodBoard.Create)
		protected.POST("/moodboards/items", h.MoodBoard.AddItem)

		protected.POST("/services", h.Service.Create)
		protected.DELETE("/services/:id", middleware.UUIDValidator("id"), h.Service.Delete)

		protected.GET("/notifications", h.Notification.List)
		protected.GET("/notifications/unread/count", h.Notification.UnreadCount)
		protected.PUT("/notifications/read-all", h.Notification.MarkAllRead)
		protected.PUT("/notifications/:id/read", middleware.UUIDValidator("id"), h.Notification.MarkRead)

		protected.GET("/conversations", h.Conversation.List)
		protected.POST("/conversations", h.Conversation.Start)
		protected.GET("/conversations/unread/count", h.Conversation.UnreadCount)
		protected.GET("/conversations/:id", middleware.UUIDValidator("id"), h.Conversation.Open)
		protected.GET("/conversations/:id/messages", middleware.UUIDValidator("id"), h.Conversation.Messages)
		protected.POST("/conversations/:id/messages", middleware.UUIDValidator("id"), h.Conversation.Send)
		protected.PUT("/conversations/:id/read", middleware.UUIDValidator("id"), h.Conversation.MarkRead)

		protected.POST("/uploads", h.Upload.Upload)
	}

	return r
}
