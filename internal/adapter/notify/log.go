package notify

import (
	"context"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log instead of a mail provider.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(_ context.Context, recipient *domain.Customer,
	template domain.NotificationTemplate, params map[string]string) error {
	fields := []zap.Field{
		zap.String("template", string(template)),
		zap.String("to", recipient.Email),
	}
	for k, v := range params {
		fields = append(fields, zap.String(k, v))
	}
	n.logger.Info("Notification sent", fields...)
	return nil
}
