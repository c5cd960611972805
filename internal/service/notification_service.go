package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventItemCreated, n.handleItemCreated)
	n.dispatcher.Subscribe(events.EventItemDeleted, n.handleItemDeleted)
	n.dispatcher.Subscribe(events.EventStockStatusChanged, n.handleStockStatusChanged)
}

func (n *NotificationService) handleItemCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ItemCreated", zap.String("item_id", event.ItemID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleItemDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ItemDeleted", zap.String("item_id", event.ItemID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStockStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("StockStatusChanged", zap.String("item_id", event.ItemID), zap.Any("payload", event.Payload))

	payload, ok := event.Payload.(events.StockStatusChangedPayload)
	if !ok {
		return nil
	}
	if payload.NewStatus == domain.StatusLowStock || payload.NewStatus == domain.StatusOutOfStock {
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("item_id", event.ItemID),
		zap.String("event_type", string(event.Type)))
}
