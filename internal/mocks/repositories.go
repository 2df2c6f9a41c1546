// Package mocks provides hand-written test doubles for the domain interfaces.
package mocks

import (
	"context"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// BookRepository is a mock implementation of repository.BookRepository.
type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) Create(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *BookRepository) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *BookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Book), args.Error(1)
}

func (m *BookRepository) Update(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *BookRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// TransactionManager is a mock that runs the given function against a
// RepositoryFactory immediately, with no real transaction underneath.
type TransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// RepositoryFactory hands back fixed repository mocks.
type RepositoryFactory struct {
	Users repository.UserRepository
	Books repository.BookRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *RepositoryFactory) BookRepo() repository.BookRepository {
	return f.Books
}
