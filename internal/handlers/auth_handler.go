package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/auth"
)

type AuthService interface {
	Login(ctx context.Context, email, senha string) (*auth.BarberSession, error)
	LoginClient(ctx context.Context, email, senha string) (*auth.ClientSession, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// --------- Requests ---------

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	session, err := h.svc.Login(c.Request.Context(), normalizeEmail(req.Email), req.Senha)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, session)
}

func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	session, err := h.svc.LoginClient(c.Request.Context(), normalizeEmail(req.Email), req.Senha)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, session)
}

// Me devolve o que está no token; depende do AuthMiddleware.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Não autenticado.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":   userID,
		"role": c.GetString(middleware.ContextUserRole),
	})
}
