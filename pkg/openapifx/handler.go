package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Handler serves the swagger UI for the generated OpenAPI document.
type Handler struct {
	spec   *swag.Spec
	logger *zap.Logger
}

func New(spec *swag.Spec, logger *zap.Logger) *Handler {
	return &Handler{
		spec:   spec,
		logger: logger,
	}
}

// Register mounts the swagger UI on the router.
func (h *Handler) Register(r fiber.Router) {
	h.logger.Debug("serving openapi document", zap.String("title", h.spec.Title))

	r.Get("/*", swagger.HandlerDefault)
}
