package opener

import (
	"errors"
	"fmt"

	"github.com/gitscope/gitscope/internal/opener"
	"github.com/gitscope/gitscope/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler consumes the opener through its two capability roles rather than
// the concrete service.
type Handler struct {
	openerSvc  opener.URIOpener
	handlerSvc opener.ResourceHandler

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	openerSvc opener.URIOpener,
	handlerSvc opener.ResourceHandler,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		openerSvc:  openerSvc,
		handlerSvc: handlerSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/open")

	r.Use(h.errorsHandler)
	r.Get("/", validation.DecorateWithQueryEx(h.validator, h.open))
	r.Get("/check", validation.DecorateWithQueryEx(h.validator, h.check))
}

//	@Summary		Resolve a resource URI
//	@Description	Resolve a resource URI to a location inside a registered repository
//	@Tags			open
//	@Accept			json
//	@Produce		json
//	@Param			uri		query		string	true	"Resource URI"
//	@Param			line	query		int		false	"1-based line number"
//	@Success		200		{object}	LocationResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/open [get]
//
// Resolve a resource URI.
func (h *Handler) open(c *fiber.Ctx, query *OpenQuery) error {
	location, err := h.openerSvc.Open(c.Context(), opener.OpenRequest{
		URI:  query.URI,
		Line: query.Line,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve resource: %w", err)
	}

	response := newLocationResponse(location)
	return c.JSON(response)
}

//	@Summary		Check a resource URI
//	@Description	Report whether a resource URI lies inside a registered repository
//	@Tags			open
//	@Accept			json
//	@Produce		json
//	@Param			uri	query		string	true	"Resource URI"
//	@Success		200	{object}	CheckResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Router			/open/check [get]
//
// Check a resource URI.
func (h *Handler) check(c *fiber.Ctx, query *OpenQuery) error {
	handled := h.handlerSvc.CanHandle(c.Context(), query.URI)

	return c.JSON(CheckResponse{Handled: handled})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, opener.ErrNotHandled) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
