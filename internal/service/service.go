package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/driving-records/internal/auth"
	"github.com/spec-kit/driving-records/internal/events"
	"github.com/spec-kit/driving-records/internal/repository"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

// resourceMessages holds the user-facing messages for one resource type.
type resourceMessages struct {
	invalid  string
	empty    string
	notFound string
}

var (
	enquiryMessages = resourceMessages{
		invalid:  "Invalid enquiry",
		empty:    "No enquiry found",
		notFound: "Enquiry not found",
	}
	customerMessages = resourceMessages{
		invalid:  "Invalid customer",
		empty:    "No customer found",
		notFound: "Customer not found",
	}
)

// repoError translates repository sentinels into domain errors.
func (m resourceMessages) repoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(m.notFound)
	case errors.Is(err, repository.ErrInvalidRecord):
		return apperrors.NewInvalidPayload(m.invalid, nil)
	default:
		return apperrors.NewInternalError(err)
	}
}

// validID reports whether id can name a stored record. Anything else cannot exist.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, eventType events.EventType, resourceID string, payload any) {
	if dispatcher == nil {
		return
	}
	actorID, _ := auth.UserIDFromContext(ctx)
	if err := dispatcher.Publish(ctx, events.New(eventType, resourceID, actorID, payload)); err != nil {
		logger.Warn("event handlers failed",
			zap.String("event_type", string(eventType)),
			zap.String("resource_id", resourceID),
			zap.Error(err))
	}
}
