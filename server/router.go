package server

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authkit/authz"
	"github.com/skillsenselab/authkit/server/middleware"
	"github.com/skillsenselab/authkit/token"
)

// RegisterRoutes wires the account routes onto the engine. Role
// requirements are declared per route group, right next to the paths
// they protect:
//
//	POST /api/auth/register   public
//	POST /api/auth/login      public
//	POST /api/auth/refresh    public (the refresh token is the credential)
//	GET  /api/auth/profile    any authenticated user
//	GET  /api/admin/*         admin only
//	GET  /health, /info       public
func (s *Server) RegisterRoutes(h *Handlers, tokens *token.Service) {
	s.engine.GET("/health", h.Health)
	s.engine.GET("/info", h.Info)

	api := s.engine.Group("/api")

	public := api.Group("/auth")
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	public.POST("/refresh", h.Refresh)

	authed := api.Group("/auth", middleware.Authenticate(tokens))
	authed.GET("/profile", h.Profile)

	admin := api.Group("/admin", middleware.Authenticate(tokens), middleware.RequireRoles(authz.RoleAdmin))
	admin.GET("/ping", h.AdminPing)
}

// Engine exposes the underlying Gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
