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

// CustomerService coordinates customer workflows.
type CustomerService struct {
	repo       repository.CustomerRepository
	validator  *validation.Validator
	cache      *cache.ListCache[domain.Customer]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// CustomerDependencies bundles collaborators for the customer service.
// Cache and Dispatcher are optional.
type CustomerDependencies struct {
	Repo       repository.CustomerRepository
	Validator  *validation.Validator
	Cache      *cache.ListCache[domain.Customer]
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		repo:       deps.Repo,
		validator:  deps.Validator,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores a new customer.
func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if violations := s.validator.Customer(in); violations != nil {
		return nil, apperrors.NewInvalidPayload(customerMessages.invalid, violations)
	}

	cust := domain.NewCustomer(uuid.NewString(), in, s.now())
	if err := s.repo.Create(ctx, cust); err != nil {
		return nil, customerMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventCustomerCreated, cust.ID, cust)
	return cust, nil
}

// List returns every customer. An empty collection is an error.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	if cached, ok := s.cache.Get(ctx); ok && len(cached) > 0 {
		return cached, nil
	}

	gen := s.cache.Generation(ctx)
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewEmpty(customerMessages.empty)
	}

	s.cache.Set(ctx, gen, items)
	return items, nil
}

// Update confirms the customer exists, validates the payload, then applies it.
// A missing record is reported even when the payload is also invalid.
func (s *CustomerService) Update(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	if violations := s.validator.Customer(in); violations != nil {
		return nil, apperrors.NewInvalidPayload(customerMessages.invalid, violations)
	}

	cust, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, customerMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventCustomerUpdated, cust.ID, cust)
	return cust, nil
}

// Delete removes the customer and returns it.
func (s *CustomerService) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	cust, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, customerMessages.repoError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.EventCustomerDeleted, cust.ID, cust)
	return cust, nil
}

func (s *CustomerService) ensureExists(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.NewNotFound(customerMessages.notFound)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return customerMessages.repoError(err)
	}
	return nil
}
