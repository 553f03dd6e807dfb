package service

import (
	"context"
	"fmt"
	"strings"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/pkg/logger"
	"placid-catalog-be/pkg/events"
	pktNats "placid-catalog-be/pkg/nats"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Broadcast(notification dto.AdminNotification)
}

// NotificationService bridges the NATS event bus to connected admin
// dashboards. Every event on events.> becomes a broadcast; the payload stays
// a thin envelope since the dashboard refetches the record anyway.
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
	err := s.subscriber.Subscribe("events.>", "dashboard-notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	payload := event.Payload()

	notif := dto.AdminNotification{
		Type: typeCode,
	}

	switch typeCode {
	case "INQUIRY_CREATED":
		name, _ := payload["name"].(string)
		subject, _ := payload["subject"].(string)
		refId, _ := payload["inquiry_id"].(string)
		notif.Title = "New inquiry"
		notif.Message = fmt.Sprintf("%s: %s", name, subject)
		notif.RefId = refId
	default:
		notif.Title = typeCode
		notif.Message = fmt.Sprintf("%v", payload)
	}

	s.logger.Info("NotificationService", "Broadcasting event", map[string]interface{}{"type": typeCode})
	if s.delivery != nil {
		s.delivery.Broadcast(notif)
	}
	return nil
}
