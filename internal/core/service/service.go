package service

import (
	"time"

	"github.com/MikeRez0/shopx/internal/core/port"
	"go.uber.org/zap"
)

const DefaultCurrency = "INR"

type Settings struct {
	Currency string
	// GatewaySecret keys the payment callback signature.
	GatewaySecret string
}

type Service struct {
	repo     port.Repository
	gateway  port.PaymentGateway
	events   port.EventPublisher
	settings Settings
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo port.Repository, gateway port.PaymentGateway, events port.EventPublisher,
	settings Settings, logger *zap.Logger) (*Service, error) {
	if settings.Currency == "" {
		settings.Currency = DefaultCurrency
	}
	if settings.GatewaySecret == "" {
		logger.Warn("gateway secret is empty, payment signatures are effectively unkeyed")
	}

	return &Service{
		repo:     repo,
		gateway:  gateway,
		events:   events,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}, nil
}
