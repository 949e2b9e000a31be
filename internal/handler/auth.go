package handler

import (
	"errors"
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/apierror"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/middleware"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	svc    service.AuthService
	secure bool
}

// NewAuthHandler builds the auth endpoints. secure toggles the cookie Secure
// flag, on in production.
func NewAuthHandler(svc service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, secure: secure}
}

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) || errors.Is(err, service.ErrUsuarioDesactivado) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, token, int(h.svc.SessionTTL().Seconds()), h.secure)
	c.JSON(http.StatusOK, resp)
}

// Biometric godoc
// @Summary Login biométrico
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/biometric [post]
func (h *AuthHandler) Biometric(c *gin.Context) {
	resp, token, err := h.svc.Biometric(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSinUsuarios) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, token, int(h.svc.SessionTTL().Seconds()), h.secure)
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Cierra la sesión en todos los dispositivos
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Sesión inválida"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	middleware.ExpireSessionCookie(c)
	c.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}
