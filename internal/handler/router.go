package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/api"
	"vinyl-record-house/internal/handler/middleware"
	"vinyl-record-house/internal/infra/metrics"
	"vinyl-record-house/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Profile  *api.ProfileHandler
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Review   *api.ReviewHandler
	Wishlist *api.WishlistHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware

	engine.GET("/health", p.Health.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMw.RequireAuth())
		addRoutes(profile, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Profile.Get},
			{Method: http.MethodPatch, Path: "", Handler: p.Profile.Update},
		})

		records := apiGroup.Group("/records")
		addRoutes(records, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Catalog.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Catalog.Get},
			{Method: http.MethodGet, Path: "/slug/:slug", Handler: p.Catalog.GetBySlug},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: p.Review.ListByRecord},
			{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: p.Review.RatingStats},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(authMw.OptionalAuth(), middleware.CartSession(p.Config.Cookie))
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: p.Cart.Clear},
			{Method: http.MethodPost, Path: "/items", Handler: p.Cart.AddItem},
			{Method: http.MethodPut, Path: "/items/:record_id", Handler: p.Cart.UpdateItem},
			{Method: http.MethodDelete, Path: "/items/:record_id", Handler: p.Cart.RemoveItem},
		})

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMw.RequireAuth())
		addRoutes(checkout, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Checkout.Checkout},
			{Method: http.MethodPost, Path: "/paid", Handler: p.Checkout.CheckoutPaid},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(authMw.RequireAuth())
		addRoutes(orders, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Order.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Order.Get},
			{Method: http.MethodGet, Path: "/:id/invoice", Handler: p.Order.Invoice},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Order.Cancel},
			{
				Method:  http.MethodPatch,
				Path:    "/:id/status",
				Handler: p.Order.UpdateStatus,
				Mw:      []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleStaff)},
			},
		})

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: p.Review.Get},
			})

			authRequired := reviews.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: p.Review.ListMine},
				{Method: http.MethodPost, Path: "", Handler: p.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Review.Delete},
			})
		}

		wishlist := apiGroup.Group("/wishlist")
		wishlist.Use(authMw.RequireAuth())
		addRoutes(wishlist, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Wishlist.List},
			{Method: http.MethodDelete, Path: "", Handler: p.Wishlist.Clear},
			{Method: http.MethodGet, Path: "/status", Handler: p.Wishlist.BulkStatus},
			{Method: http.MethodGet, Path: "/status/:record_id", Handler: p.Wishlist.Status},
			{Method: http.MethodPost, Path: "/toggle", Handler: p.Wishlist.Toggle},
			{Method: http.MethodDelete, Path: "/items/:record_id", Handler: p.Wishlist.Remove},
			{Method: http.MethodPost, Path: "/items/:record_id/move-to-cart", Handler: p.Wishlist.MoveToCart},
		})
	}
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
