package dto

import (
	"github.com/spec-kit/shop-service/internal/domain"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// CheckoutRequest payload for placing an order.
type CheckoutRequest struct {
	Items []domain.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// Validate rejects malformed checkout payloads at the boundary. Line-item
// semantics (quantities, prices) are validated again by the order service.
func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return apperrors.NewValidationError("Empty cart")
	}
	return nil
}
