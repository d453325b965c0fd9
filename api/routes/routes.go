package routes

import (
	"time"

	"enrollix/api/handler"
	"enrollix/api/middleware"
	"enrollix/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Catalog        *handler.CatalogHandler
	Applications   *handler.ApplicationHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	applicationHandler *handler.ApplicationHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Catalog:        catalogHandler,
		Applications:   applicationHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	adminOnly := middleware.RequireRoles(entity.RoleAdmin)

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/token", r.Auth.Token, r.LoginRate.Middleware())
	e.GET("/auth/confirm-email", r.Auth.ConfirmEmail, r.AuthRate.Middleware())

	e.GET("/me", r.Auth.Me, requireAuth)
	e.GET("/admin/users", r.Auth.AdminListUsers, requireAuth, adminOnly)

	e.GET("/academic-years", r.Catalog.ListAcademicYears)
	e.POST("/academic-years", r.Catalog.CreateAcademicYear, requireAuth, adminOnly)
	e.GET("/domaines", r.Catalog.ListDomaines)
	e.POST("/domaines", r.Catalog.CreateDomaine, requireAuth, adminOnly)
	e.GET("/programmes", r.Catalog.ListProgrammes)
	e.POST("/programmes", r.Catalog.CreateProgramme, requireAuth, adminOnly)

	e.POST("/applications", r.Applications.Create, requireAuth, middleware.RequireRoles(entity.RoleStudent))
	e.GET("/applications", r.Applications.List, requireAuth)
	e.POST("/applications/:id/submit", r.Applications.Submit, requireAuth, middleware.RequireRoles(entity.RoleStudent))
	e.POST("/applications/:id/decision", r.Applications.Decide, requireAuth,
		middleware.RequireRoles(entity.RoleReviewer, entity.RoleAdmin))
}
