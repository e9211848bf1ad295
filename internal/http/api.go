package http

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"account-service/internal/auth"
	"account-service/internal/service"
)

// Handler wires HTTP routes to the account service.
type Handler struct {
	accounts service.AccountService
	tokens   *auth.TokenService
	logger   *logrus.Logger
}

func NewHandler(accounts service.AccountService, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestID())
	router.Use(requestLogger(h.logger))
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server running successfully"})
	})

	api := router.Group("/api")
	{
		api.POST("/sign-up", h.signUp)
		api.POST("/sign-in", h.signIn)

		profile := api.Group("/profile", authRequired(h.tokens))
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Biography *string `json:"biography"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Active:   active,
	})
	switch {
	case errors.Is(err, service.ErrMissingUsername):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Username is required!"})
	case errors.Is(err, service.ErrMissingPassword):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Password is required!"})
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Username is already in use"})
	case err != nil:
		h.logger.WithError(err).Error("sign-up failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "fail",
			"message": "Please try again later, or contact to administrator",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Register successfully, please sign in",
		})
	}
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingUsername):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Username is required!"})
	case errors.Is(err, service.ErrMissingPassword):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Password is required!"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credentials not match, please try again"})
	case err != nil:
		h.logger.WithError(err).Error("sign-in failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"message":      "Login successfully",
			"access_token": result.Token,
			"currentUser":  result.User,
		})
	}
}

func (h *Handler) getProfile(c *gin.Context) {
	info, err := h.accounts.GetProfile(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		h.logger.WithError(err).Error("get profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	info, err := h.accounts.UpdateProfile(c.Request.Context(), c.GetInt64(userIDKey), service.ProfileUpdate{
		Name:      req.Name,
		Biography: req.Biography,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
	})
	if err != nil {
		h.logger.WithError(err).Error("update profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully!",
		"profile": info,
	})
}
