package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// startSession issues a token for user and records the session.
func (s *Server) startSession(c *gin.Context, user dto.UserDTO) {
	token, expiresAt, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		fail(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	s.store.OpenSession(user.ID, token, expiresAt, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, dto.AuthResponse{Redirect: false, Token: token, User: user})
}

func (s *Server) signUp(c *gin.Context) {
	var req signUpRequest
	if !bind(c, &req) {
		return
	}
	user, err := s.store.CreateUser(req.Email, req.Password, s.clean(req.Name))
	if err != nil {
		fail(c, err)
		return
	}
	s.startSession(c, user)
}

func (s *Server) signIn(c *gin.Context) {
	var req signInRequest
	if !bind(c, &req) {
		return
	}
	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	s.startSession(c, user)
}

func (s *Server) signOut(c *gin.Context) {
	s.store.CloseSession(c.GetString(middleware.TokenKey))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getSession(c *gin.Context) {
	sess, ok := s.store.Session(c.GetString(middleware.TokenKey))
	if !ok {
		fail(c, apperrors.ErrUnauthorized)
		return
	}
	user, err := s.store.User(sess.UserID)
	if err != nil {
		fail(c, apperrors.ErrUnauthorized)
		return
	}
	respond(c, http.StatusOK, dto.SessionResponse{Session: sess, User: user}, nil)
}
