//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
)

// MockPolicyRepository is a mock implementation of PolicyRepository
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Create(ctx context.Context, policy *policies.PolicyMeta) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) List(ctx context.Context, userID string, query *policies.PolicyMetaQuery) ([]*policies.PolicyMeta, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policies.PolicyMeta), args.Error(1)
}

func (m *MockPolicyRepository) GetByID(ctx context.Context, policyID, userID string) (*policies.PolicyMeta, error) {
	args := m.Called(ctx, policyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.PolicyMeta), args.Error(1)
}

func (m *MockPolicyRepository) DeleteByID(ctx context.Context, policyID, userID string) error {
	args := m.Called(ctx, policyID, userID)
	return args.Error(0)
}

// MockDocumentStore is a mock implementation of DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, fileName string, content []byte) (string, error) {
	args := m.Called(ctx, fileName, content)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockDocumentExtractor is a mock implementation of DocumentExtractor
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(data []byte) (string, int, error) {
	args := m.Called(data)
	return args.String(0), args.Int(1), args.Error(2)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*users.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockReportRenderer is a mock implementation of ReportRenderer
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(policy *policies.PolicyMeta) ([]byte, error) {
	args := m.Called(policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
