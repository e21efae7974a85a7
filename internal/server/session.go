package server

import (
	"errors"
	"net/http"

	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionID returns the caller's session identifier, issuing a new cookie
// when the request carries none or a malformed one.
func (s *Server) sessionID(c *gin.Context) string {
	name := s.config.Session.CookieName
	if id, err := c.Cookie(name); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, id, int(s.config.Session.TTL.Seconds()), "/", "",
		s.config.Env == config.EnvProduction, true)

	return id
}

// loadPosts returns the session batch; a missing batch is empty, not an error.
func (s *Server) loadPosts(c *gin.Context, id string) ([]content.Post, error) {
	posts, err := s.store.Load(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}

	return posts, err
}
