package auth

import (
	"errors"

	"github.com/gitscope/gitscope/internal/auth"
	"github.com/gitscope/gitscope/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(authSvc *auth.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/auth")

	r.Use(h.errorsHandler)
	r.Post("/login", validation.DecorateWithBodyEx(h.validator, h.login))
	r.Post("/refresh", validation.DecorateWithBodyEx(h.validator, h.refresh))
}

//	@Summary		Log in
//	@Description	Exchange credentials for an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Login request"
//	@Success		200			{object}	TokenResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		401			{object}	fiberfx.ErrorResponse
//	@Router			/auth/login [post]
//
// Log in.
func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	user, token, err := h.authSvc.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		Token: token,
		Role:  string(user.Role),
	})
}

//	@Summary		Refresh a token
//	@Description	Exchange a valid access token for a fresh one
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		RefreshRequest	true	"Refresh request"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Router			/auth/refresh [post]
//
// Refresh a token.
func (h *Handler) refresh(c *fiber.Ctx, req *RefreshRequest) error {
	token, err := h.authSvc.RefreshJWT(c.Context(), req.Token)
	if err != nil {
		return err
	}

	claims, err := h.authSvc.ValidateJWT(c.Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		Token: token,
		Role:  string(claims.Role),
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
