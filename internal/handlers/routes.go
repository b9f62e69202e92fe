package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management-api/internal/middleware"
	"github.com/yukikurage/project-management-api/internal/token"
)

// NewEngine creates a gin engine that only believes X-Forwarded-For from the
// given proxies. With none, the socket address is the client IP.
func NewEngine(trustedProxies []string, middlewares ...gin.HandlerFunc) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(middlewares...)
	return r, nil
}

// Routes bundles what RegisterRoutes needs to mount the API.
type Routes struct {
	Auth        *AuthHandler
	Projects    *ProjectHandler
	Verifier    token.Verifier
	AuthLimiter *middleware.RateLimiter
	Health      gin.HandlerFunc
}

// RegisterRoutes mounts every endpoint on r.
func RegisterRoutes(r gin.IRouter, routes Routes) {
	if routes.Health != nil {
		r.GET("/health", routes.Health)
	}

	// Public routes
	public := r.Group("")
	public.Use(middleware.RateLimit(routes.AuthLimiter))
	{
		public.POST("/signup", routes.Auth.Signup)
		public.POST("/signin", routes.Auth.Signin)
	}

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.RequireToken(routes.Verifier))
	{
		protected.POST("/signout", routes.Auth.Signout)
		protected.GET("/me", routes.Auth.GetCurrentUser)

		protected.POST("/projects/add", routes.Projects.AddProject)
		protected.GET("/projects", routes.Projects.ListProjects)
		protected.GET("/project/:id", routes.Projects.GetProject)
		protected.PATCH("/projects/:projectId", routes.Projects.EditProject)
		protected.DELETE("/projects/:id", routes.Projects.DeleteProject)
	}
}
