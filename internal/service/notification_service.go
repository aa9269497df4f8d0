package service

import (
	"context"

	"circletel-admin-be/internal/pkg/logger"
	"circletel-admin-be/internal/websocket"
	"circletel-admin-be/pkg/events"
	pktNats "circletel-admin-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Broadcast(n websocket.Notification)
}

// NotificationService bridges the event bus to connected admin consoles:
// any order event published by a service instance shows up in every open
// admin tab.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("orders.>", "admin-notify-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to orders.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	n := websocket.Notification{
		Event: event.EventType(),
		Data:  payload,
	}
	if raw, ok := payload["order_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			n.OrderId = id
		}
	}
	if num, ok := payload["order_number"].(string); ok {
		n.OrderNumber = num
	}

	s.delivery.Broadcast(n)
	return nil
}
