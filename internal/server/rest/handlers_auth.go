package rest

import (
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	token, err := s.deps.Users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(c, "users.register", err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "email", req.Email)
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	token, err := s.deps.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// bad credentials are a 400 on this route, unlike the auth gate
		if apperr.KindOf(err) == apperr.KindAuth {
			c.JSON(http.StatusBadRequest, gin.H{"msg": apperr.From(err).Message})
			return
		}
		s.writeError(c, "auth.login", err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleMe(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	user, err := s.deps.Users.Me(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, "auth.me", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
