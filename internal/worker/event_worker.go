package worker

import (
	"context"

	"github.com/spec-kit/driving-records/internal/cache"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/events"
	"github.com/spec-kit/driving-records/internal/service"
)

// Subscribers groups the event consumers wired at startup. Nil members are skipped.
type Subscribers struct {
	Audit         *service.AuditService
	EnquiryCache  *cache.ListCache[domain.Enquiry]
	CustomerCache *cache.ListCache[domain.Customer]
}

// StartEventWorker registers the audit log and list-cache invalidation handlers.
func StartEventWorker(dispatcher events.Dispatcher, subs Subscribers) {
	if dispatcher == nil {
		return
	}
	if subs.Audit != nil {
		subs.Audit.RegisterHandlers()
	}
	if subs.EnquiryCache != nil {
		subscribeAll(dispatcher, events.EnquiryEvents, invalidate(subs.EnquiryCache.Invalidate))
	}
	if subs.CustomerCache != nil {
		subscribeAll(dispatcher, events.CustomerEvents, invalidate(subs.CustomerCache.Invalidate))
	}
}

func subscribeAll(dispatcher events.Dispatcher, types []events.EventType, handler events.EventHandler) {
	for _, t := range types {
		dispatcher.Subscribe(t, handler)
	}
}

func invalidate(fn func(context.Context) error) events.EventHandler {
	return func(ctx context.Context, _ events.Event) error {
		return fn(ctx)
	}
}
