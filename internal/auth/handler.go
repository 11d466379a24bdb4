package auth

import (
	"net/http"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/api"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"

	"github.com/gin-gonic/gin"
)

// Handler authenticates the single admin account configured via
// environment. The old deployment compared a hardcoded passcode in the
// browser; the server now issues signed tokens instead.
type Handler struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
}

func NewHandler(adminEmail, adminPasswordHash, jwtSecret string) *Handler {
	return &Handler{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticates the admin and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Admin credentials"
// @Success      200      {object}  api.Response
// @Failure      400      {object}  api.Response
// @Failure      401      {object}  api.Response
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email != h.adminEmail || !CheckPassword(h.adminPasswordHash, req.Password) {
		api.Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	accessToken, refreshToken, err := GenerateTokens(h.adminEmail, RoleAdmin, h.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to generate tokens: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}

	api.OK(c, http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh godoc
// @Summary      Refresh access token
// @Description  Returns a new access token for a valid refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  api.Response
// @Failure      400      {object}  api.Response
// @Failure      401      {object}  api.Response
// @Router       /api/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		api.Fail(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	newAccessToken, _, err := RefreshAccessToken(req.RefreshToken, h.jwtSecret)
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	api.OK(c, http.StatusOK, TokenResponse{AccessToken: newAccessToken})
}
