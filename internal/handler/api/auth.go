package api

import (
	"errors"
	"net/http"

	reqdto "meetup-api/internal/handler/dto/request"
	resdto "meetup-api/internal/handler/dto/response"
	"meetup-api/internal/handler/httperr"
	"meetup-api/internal/handler/middleware"
	"meetup-api/internal/pkg/config"
	"meetup-api/internal/pkg/cookie"
	"meetup-api/internal/pkg/jwt"
	"meetup-api/internal/usecase/commands"
	"meetup-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	userQuery  queries.UserQueries
	jwtService jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, userQuery queries.UserQueries, jwtService jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		userQuery:  userQuery,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Register user
// @Description Create a member account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request", CodeValidationFailed)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithCode(c, http.StatusConflict, err, "Email is already registered", CodeEmailTaken)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid user data", CodeValidationFailed)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}

	view, err := h.userQuery.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{User: view})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())

	user, err := h.userQuery.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Refresh token required", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())

	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	user, err := h.userQuery.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
