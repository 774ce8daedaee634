package auth

import (
	"net/http"
	"strings"

	"github.com/da-maltsev/fit-track/src/common/errors"
	"github.com/da-maltsev/fit-track/src/common/logs"
	"github.com/gin-gonic/gin"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the package-level logger
func SetLogger(l *logs.Logger) {
	log = l
}

// Handler handles account and login HTTP requests
type Handler struct {
	repo   *UserRepository
	tokens *TokenService
}

// NewHandler creates a new auth handler
func NewHandler(repo *UserRepository, tokens *TokenService) *Handler {
	return &Handler{
		repo:   repo,
		tokens: tokens,
	}
}

// HandleCreate handles user registration and creates a new account with the
// provided credentials
//
//	@Summary		Register a user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		CreateUserRequest	true	"Account details"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	errors.Response
//	@Failure		409		{object}	errors.Response
//	@Router			/users [post]
func (h *Handler) HandleCreate(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrValidationFailed.WithMessage(err.Error()).ToResponse())
		return
	}

	user, err := h.repo.Create(req.Email, req.Username, req.Password)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	if log != nil {
		log.Info("User registered", "user", user.Username, "user_id", user.ID)
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}

// HandleLogin authenticates a user and issues a bearer token. The request
// body may be JSON or a classic form; the username field also accepts the
// account's email.
//
//	@Summary		Log in
//	@Tags			users
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Login credentials"
//	@Success		200			{object}	TokenResponse
//	@Failure		400			{object}	errors.Response
//	@Failure		401			{object}	errors.Response
//	@Router			/users/login [post]
func (h *Handler) HandleLogin(c *gin.Context) {
	req, err := bindLoginRequest(c)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	user, err := h.repo.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, errors.ErrInvalidCredentials.ToResponse())
			return
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		if log != nil {
			log.Error("Failed to generate token", "user_id", user.ID, "error", err)
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	if log != nil {
		log.Info("User logged in", "user", user.Username, "user_id", user.ID)
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleGetUser retrieves a user's public profile by id
//
//	@Summary		Get a user by id
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	UserResponse
//	@Failure		404	{object}	errors.Response
//	@Router			/users/{id} [get]
func (h *Handler) HandleGetUser(c *gin.Context) {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errors.ErrUserNotFound.ToResponse())
		return
	}

	user, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}

// HandleMe returns the profile of the authenticated user
//
//	@Summary		Get the current user
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	errors.Response
//	@Router			/users/me [get]
func (h *Handler) HandleMe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, errors.ErrNotAuthenticated.ToResponse())
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}

// bindLoginRequest decodes the login body from JSON or form encoding
func bindLoginRequest(c *gin.Context) (*LoginRequest, error) {
	var req LoginRequest

	contentType := c.ContentType()
	switch {
	case contentType == "" || strings.HasPrefix(contentType, "application/json"):
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errors.ErrValidationFailed.WithMessage(err.Error())
		}
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"),
		strings.HasPrefix(contentType, "multipart/form-data"):
		if err := c.ShouldBind(&req); err != nil {
			return nil, errors.ErrValidationFailed.WithMessage(err.Error())
		}
	default:
		return nil, errors.ErrUnsupportedContentType
	}

	return &req, nil
}

// ExtractTokenFromRequest extracts the bearer token from the Authorization
// header. Returns "" when the header is absent or not a bearer scheme.
func ExtractTokenFromRequest(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}
