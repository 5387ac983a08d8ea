package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/clierr"
	"github.com/glanceworks/tododash/internal/config"
)

// The response envelope mirrors what the setup UI expects:
// {"success": true, ...} on success, {"success": false, "error": ...} otherwise.

func (s *Server) store(c *gin.Context) *account.Store {
	return account.NewStore(s.dir, c.Param("instance"))
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// statusFor maps structured errors to HTTP status codes.
func statusFor(err error) int {
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		switch cliErr.Code {
		case clierr.AccountNotFound, clierr.InstanceNotFound:
			return http.StatusNotFound
		case clierr.AccountExists:
			return http.StatusConflict
		case clierr.InvalidInput, clierr.InvalidSettings:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) handleListAccounts(c *gin.Context) {
	accounts, err := s.store(c).Load()
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load accounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "accounts": accounts})
}

func (s *Server) handleAddAccount(c *gin.Context) {
	var a account.Account
	if err := c.ShouldBindJSON(&a); err != nil {
		fail(c, http.StatusBadRequest, "invalid account payload")
		return
	}
	if err := s.store(c).Add(a); err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleUpdateAccount(c *gin.Context) {
	var a account.Account
	if err := c.ShouldBindJSON(&a); err != nil {
		fail(c, http.StatusBadRequest, "invalid account payload")
		return
	}
	if err := s.store(c).Update(a); err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteAccount(c *gin.Context) {
	if err := s.store(c).Remove(c.Param("token")); err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleGetSettings(c *gin.Context) {
	settings, err := config.Load(s.dir, c.Param("instance"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (s *Server) handleSaveSettings(c *gin.Context) {
	var settings config.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		fail(c, http.StatusBadRequest, "invalid settings payload")
		return
	}
	if err := config.Save(s.dir, c.Param("instance"), &settings); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (s *Server) handleGetProjects(c *gin.Context) {
	settings, err := config.Load(s.dir, c.Param("instance"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "selectedProjects": settings.SelectedProjects})
}

func (s *Server) handleSelectProjects(c *gin.Context) {
	var payload struct {
		SelectedProjects []string `json:"selectedProjects"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "invalid project selection payload")
		return
	}

	instance := c.Param("instance")
	settings, err := config.Load(s.dir, instance)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	settings.SelectedProjects = payload.SelectedProjects
	if err := config.Save(s.dir, instance, settings); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "selectedProjects": settings.SelectedProjects})
}

// handleTasks returns the current aggregated display sequence for an
// instance, fetching all configured accounts first.
func (s *Server) handleTasks(c *gin.Context) {
	instance := c.Param("instance")

	accounts, err := account.NewStore(s.dir, instance).Load()
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load accounts")
		return
	}
	settings, err := config.Load(s.dir, instance)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	inputs := s.fetcher.FetchAll(c.Request.Context(), accounts)
	view, err := agg.Build(inputs, settings, time.Now())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": view.Items, "legend": view.Legend})
}
