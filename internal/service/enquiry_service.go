package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/driving-records/internal/cache"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/events"
	"github.com/spec-kit/driving-records/internal/repository"
	"github.com/spec-kit/driving-records/internal/validation"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

// EnquiryService coordinates enquiry workflows.
type EnquiryService struct {
	repo       repository.EnquiryRepository
	validator  *validation.Validator
	cache      *cache.ListCache[domain.Enquiry]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// EnquiryDependencies bundles collaborators for the enquiry service.
// Cache and Dispatcher are optional.
type EnquiryDependencies struct {
	Repo       repository.EnquiryRepository
	Validator  *validation.Validator
	Cache      *cache.ListCache[domain.Enquiry]
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewEnquiryService constructs the service.
func NewEnquiryService(deps EnquiryDependencies) *EnquiryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnquiryService{
		repo:       deps.Repo,
		validator:  deps.Validator,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores a new enquiry.
func (s *EnquiryService) Create(ctx context.Context, in domain.EnquiryInput) (*domain.Enquiry, error) {
	if violations := s.validator.Enquiry(in); violations != nil {
		return nil, apperrors.NewInvalidPayload(enquiryMessages.invalid, violations)
	}

	enq := domain.NewEnquiry(uuid.NewString(), in, s.now())
	if err := s.repo.Create(ctx, enq); err != nil {
		return nil, enquiryMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventEnquiryCreated, enq.ID, enq)
	return enq, nil
}

// List returns every enquiry. An empty collection is an error.
func (s *EnquiryService) List(ctx context.Context) ([]domain.Enquiry, error) {
	if cached, ok := s.cache.Get(ctx); ok && len(cached) > 0 {
		return cached, nil
	}

	gen := s.cache.Generation(ctx)
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewEmpty(enquiryMessages.empty)
	}

	s.cache.Set(ctx, gen, items)
	return items, nil
}

// Update confirms the enquiry exists, validates the payload, then applies it.
// A missing record is reported even when the payload is also invalid.
func (s *EnquiryService) Update(ctx context.Context, id string, in domain.EnquiryInput) (*domain.Enquiry, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	if violations := s.validator.Enquiry(in); violations != nil {
		return nil, apperrors.NewInvalidPayload(enquiryMessages.invalid, violations)
	}

	enq, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, enquiryMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventEnquiryUpdated, enq.ID, enq)
	return enq, nil
}

// Delete removes the enquiry and returns it. Customers referencing it keep the id.
func (s *EnquiryService) Delete(ctx context.Context, id string) (*domain.Enquiry, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	enq, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, enquiryMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventEnquiryDeleted, enq.ID, enq)
	return enq, nil
}

func (s *EnquiryService) ensureExists(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.NewNotFound(enquiryMessages.notFound)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return enquiryMessages.repoError(err)
	}
	return nil
}
