package demoapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/glowdesk/medspa-console/internal/config"
	"github.com/glowdesk/medspa-console/internal/dto"
	"github.com/glowdesk/medspa-console/internal/httperr"
	"github.com/glowdesk/medspa-console/internal/models"
	"github.com/glowdesk/medspa-console/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	store  *Store
	config *config.Config
}

func NewAuthHandler(store *Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, config: cfg}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "email or password is incorrect")
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "enter a valid email address")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		if httperr.IsStore(err, "email_already_registered") {
			httperr.BadRequest(c, "email_already_registered", "an account with this email already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "")
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user models.User) {
	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "")
		return
	}

	c.JSON(status, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
		User:        user,
	})
}

func (h *AuthHandler) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
