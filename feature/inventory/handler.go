package inventory

import (
	"receiving-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/:productId", h.HandleGetBalance)
}

// HandleGetBalance returns the stock balance of a single product.
// @Summary Get Stock Balance
// @Description Get the current stock balance for a product.
// @Tags inventory
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} Balance
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{productId} [get]
func (h *Handler) HandleGetBalance(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	l := logger.WithRayID(h.service.logger, c)

	balance, err := h.service.GetBalance(c.Context(), uint(productID))
	if err != nil {
		l.Warn("Balance lookup failed", zap.Int("product_id", productID), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(balance)
}
