// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/repository"
)

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.EnquiryRepository  = (*EnquiryRepository)(nil)
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// EnquiryRepository is a mock implementation of repository.EnquiryRepository.
type EnquiryRepository struct {
	mock.Mock
}

func (m *EnquiryRepository) Create(ctx context.Context, enq *domain.Enquiry) error {
	args := m.Called(ctx, enq)
	return args.Error(0)
}

func (m *EnquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *EnquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *EnquiryRepository) Update(ctx context.Context, id string, in domain.EnquiryInput) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *EnquiryRepository) Delete(ctx context.Context, id string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

// CustomerRepository is a mock implementation of repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, cust *domain.Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerRepository) Update(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerRepository) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
