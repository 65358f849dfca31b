package port

import (
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
)

type TokenPayload struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	Role       domain.Role `json:"role"`
}

type TokenService interface {
	CreateToken(payload *TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
