// Package server implements the admin HTTP API for managing accounts,
// settings, and project selection per dashboard instance.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glanceworks/tododash/internal/fetch"
)

// Server is the tododash admin server.
type Server struct {
	dir     string // instance storage directory
	fetcher *fetch.Fetcher
	router  *gin.Engine
}

// New creates a server over the given instance directory. All account and
// settings state lives in that directory; the server holds no other state.
func New(dir string, fetcher *fetch.Fetcher) *Server {
	router := gin.Default()

	s := &Server{
		dir:     dir,
		fetcher: fetcher,
		router:  router,
	}

	api := router.Group("/api")
	{
		api.GET("/accounts/:instance", s.handleListAccounts)
		api.POST("/accounts/:instance", s.handleAddAccount)
		api.PUT("/accounts/:instance", s.handleUpdateAccount)
		api.DELETE("/accounts/:instance/:token", s.handleDeleteAccount)

		api.GET("/settings/:instance", s.handleGetSettings)
		api.POST("/settings/:instance", s.handleSaveSettings)

		api.GET("/projects/:instance", s.handleGetProjects)
		api.POST("/projects/:instance", s.handleSelectProjects)

		api.GET("/tasks/:instance", s.handleTasks)
	}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the admin server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
