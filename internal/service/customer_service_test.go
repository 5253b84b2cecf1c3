package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/events"
	"github.com/spec-kit/driving-records/internal/repository"
	"github.com/spec-kit/driving-records/internal/repository/mocks"
	"github.com/spec-kit/driving-records/internal/validation"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

const customerID = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"

func customerInput() domain.CustomerInput {
	return domain.CustomerInput{
		FirstName:          "Jane",
		PreferredName:      "Jay",
		LastName:           "Doe",
		Mobile:             "07123456789",
		Email:              "jane@email.com",
		FirstLineOfAddress: "1 High Street",
		Postcode:           "SW1A 1AA",
		DrivingLicenceNum:  "DOEJA805219J99AB",
		TestPreparation:    boolPtr(false),
		SkillsImprovement:  boolPtr(true),
		Enquiries:          []string{existingID},
	}
}

func newCustomerService(repo *mocks.CustomerRepository) (*CustomerService, *recorder) {
	dispatcher := events.NewInMemoryDispatcher()
	rec := &recorder{}
	rec.subscribe(dispatcher, events.CustomerEvents...)
	return NewCustomerService(CustomerDependencies{
		Repo:       repo,
		Validator:  validation.New(),
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	}), rec
}

func TestCustomerService_Create(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.FirstName == "Jane" && len(c.Enquiries) == 1
	})).Return(nil)
	svc, rec := newCustomerService(repo)

	cust, err := svc.Create(context.Background(), customerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, cust.ID)
	assert.False(t, cust.DateAdded.IsZero())
	require.Len(t, rec.events, 1)
	assert.Equal(t, events.EventCustomerCreated, rec.events[0].Type)
	repo.AssertExpectations(t)
}

func TestCustomerService_CreateInvalid(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc, _ := newCustomerService(repo)

	in := customerInput()
	in.DrivingLicenceNum = "123"
	_, err := svc.Create(context.Background(), in)

	domainErr := requireKind(t, err, apperrors.KindInvalidPayload, "Invalid customer")
	require.Len(t, domainErr.Violations, 1)
	assert.Equal(t, "drivingLicenceNum", domainErr.Violations[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_ListEmpty(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("List", mock.Anything).Return(nil, nil)
	svc, _ := newCustomerService(repo)

	_, err := svc.List(context.Background())
	requireKind(t, err, apperrors.KindEmpty, "No customer found")
}

func TestCustomerService_List(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("List", mock.Anything).Return([]domain.Customer{{ID: customerID}, {ID: existingID}}, nil)
	svc, _ := newCustomerService(repo)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCustomerService_Update(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	in := customerInput()
	repo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	repo.On("Update", mock.Anything, customerID, in).Return(&domain.Customer{ID: customerID, FirstName: "Jane"}, nil)
	svc, rec := newCustomerService(repo)

	cust, err := svc.Update(context.Background(), customerID, in)
	require.NoError(t, err)

	assert.Equal(t, "Jane", cust.FirstName)
	require.Len(t, rec.events, 1)
	assert.Equal(t, events.EventCustomerUpdated, rec.events[0].Type)
}

func TestCustomerService_UpdateMissing(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("GetByID", mock.Anything, customerID).Return(nil, repository.ErrNotFound)
	svc, _ := newCustomerService(repo)

	_, err := svc.Update(context.Background(), customerID, customerInput())
	requireKind(t, err, apperrors.KindNotFound, "Customer not found")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateMissingWinsOverInvalidPayload(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("GetByID", mock.Anything, customerID).Return(nil, repository.ErrNotFound)
	svc, _ := newCustomerService(repo)

	in := customerInput()
	in.DrivingLicenceNum = "123"
	_, err := svc.Update(context.Background(), customerID, in)
	requireKind(t, err, apperrors.KindNotFound, "Customer not found")

	_, err = svc.Update(context.Background(), "667595289f30b44aa2a7ec39", domain.CustomerInput{})
	requireKind(t, err, apperrors.KindNotFound, "Customer not found")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateInvalidPayload(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	svc, rec := newCustomerService(repo)

	in := customerInput()
	in.DrivingLicenceNum = "123"
	_, err := svc.Update(context.Background(), customerID, in)

	domainErr := requireKind(t, err, apperrors.KindInvalidPayload, "Invalid customer")
	require.Len(t, domainErr.Violations, 1)
	assert.Equal(t, "drivingLicenceNum", domainErr.Violations[0].Field)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, rec.events)
}

func TestCustomerService_Delete(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	repo.On("Delete", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	svc, rec := newCustomerService(repo)

	cust, err := svc.Delete(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, cust.ID)
	require.Len(t, rec.events, 1)
	assert.Equal(t, events.EventCustomerDeleted, rec.events[0].Type)
}

func TestCustomerService_DeleteFailure(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	repo.On("Delete", mock.Anything, customerID).Return(nil, errors.New("Test error"))
	svc, rec := newCustomerService(repo)

	_, err := svc.Delete(context.Background(), customerID)
	requireKind(t, err, apperrors.KindInternal, "Test error")
	assert.Empty(t, rec.events)
}

func TestCustomerService_DeleteMalformedID(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc, _ := newCustomerService(repo)

	_, err := svc.Delete(context.Background(), "667595289f30b44aa2a7ec39")
	requireKind(t, err, apperrors.KindNotFound, "Customer not found")
}
