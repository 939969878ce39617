package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-tracker-api/internal/services"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds the service dependency for registration and login.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register godoc
//	@Summary		Register a new account
//	@Description	Creates an account and returns an access token for it.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.RegisterRequest	true	"Email and password"
//	@Success		201			{object}	dto.TokenResponse	"Account created"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		409			{object}	map[string]string	"Conflict - Email already registered"
//	@Failure		429			{object}	map[string]string	"Too many requests"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	_, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		} else {
			log.Printf("Register: Error creating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login godoc
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Email and password"
//	@Success		200			{object}	dto.TokenResponse	"Logged in"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string	"Invalid credentials"
//	@Failure		429			{object}	map[string]string	"Too many requests"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			log.Printf("Login: Error logging in: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
