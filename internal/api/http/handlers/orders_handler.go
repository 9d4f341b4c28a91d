package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/service"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// OrdersHandler exposes checkout and order listing for the authenticated
// customer.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// List handles GET /api/orders. Orders are scoped to the principal and
// returned newest first.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	orders, err := h.orders.ListForUser(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true, "orders": orders})
}

// Checkout handles POST /api/checkout.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	order, err := h.orders.Checkout(c.UserContext(), principal.UserID, req.Items, req.Total)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true, "order": order})
}
