package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/middleware"
	"shgportal/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Organization *handler.OrganizationHandler
	Product      *handler.ProductHandler
	Navigator    *handler.NavigatorHandler
	Location     *handler.LocationHandler
	Dashboard    *handler.DashboardHandler
	Report       *handler.ReportHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, log *zap.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT and a complete jurisdiction
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.ScopeGuard())

	protected.GET("/auth/me", h.Auth.Me)

	// User management (state level only)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleNIC), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleNIC), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleNIC), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleNIC), h.User.Delete)

	managers := middleware.RequireRole(domain.ManagerRoles...)

	orgs := protected.Group("/organizations")
	orgs.POST("", managers, h.Organization.Create)
	orgs.GET("", h.Organization.List)
	orgs.GET("/:id", h.Organization.GetByID)
	orgs.PUT("/:id", managers, h.Organization.Update)
	orgs.DELETE("/:id", managers, h.Organization.Delete)
	orgs.POST("/:id/products", managers, h.Product.Create)
	orgs.GET("/:id/products", h.Product.ListByOrganization)

	products := protected.Group("/products")
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", managers, h.Product.Update)
	products.DELETE("/:id", managers, h.Product.Delete)

	// Cascading selection session of the caller
	nav := protected.Group("/navigator")
	nav.GET("", h.Navigator.State)
	nav.DELETE("", h.Navigator.Reset)
	nav.PUT("/district", h.Navigator.SelectDistrict)
	nav.PUT("/block", h.Navigator.SelectBlock)
	nav.PUT("/gram-panchayat", h.Navigator.SelectGramPanchayat)
	nav.PUT("/village", h.Navigator.SelectVillage)
	nav.PUT("/shg", h.Navigator.SelectSHG)

	locations := protected.Group("/locations")
	locations.GET("/districts", h.Location.Districts)
	locations.GET("/blocks", h.Location.Blocks)
	locations.GET("/gram-panchayats", h.Location.GramPanchayats)
	locations.GET("/villages", h.Location.Villages)
	locations.GET("/shgs", h.Location.SHGs)
	locations.GET("/shg", h.Location.SHG)

	protected.GET("/dashboard", h.Dashboard.Stats)

	reports := protected.Group("/reports")
	reports.Use(managers)
	reports.GET("/shg-members", h.Report.Members)
	reports.GET("/summary", h.Report.Summary)
	reports.POST("/shg-members/publish", h.Report.PublishMembers)

	return r
}
