package mocks

import (
	"time"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(subjectEmail string, role entity.Role) (string, error) {
	args := m.Called(subjectEmail, role)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *TokenService) ExpiresAt(issuedAt time.Time) time.Time {
	args := m.Called(issuedAt)

	return args.Get(0).(time.Time)
}

// NoopRecorder satisfies metrics.Recorder without recording anything.
type NoopRecorder struct{}

func (NoopRecorder) RecordRegistration(success bool)          {}
func (NoopRecorder) RecordSignIn(success bool)                {}
func (NoopRecorder) RecordTokenValidationFailure(kind string) {}
func (NoopRecorder) RecordBookMutation(operation string)      {}
