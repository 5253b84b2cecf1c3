package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/driving-records/internal/config"
	"github.com/spec-kit/driving-records/internal/events"
)

// AuditService writes every record mutation to the audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events. Disabled auditing registers nothing.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil || !a.cfg.Enabled {
		return
	}
	for _, t := range events.EnquiryEvents {
		a.dispatcher.Subscribe(t, a.handleEvent)
	}
	for _, t := range events.CustomerEvents {
		a.dispatcher.Subscribe(t, a.handleEvent)
	}
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("resource_id", event.ResourceID),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	} else {
		fields = append(fields, zap.String("actor_id", "anonymous"))
	}
	a.logger.Info(string(event.Type), fields...)
	return nil
}
