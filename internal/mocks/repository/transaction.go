package repository

import (
	"context"

	"salesapi/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured mocks as the
// transaction-bound repositories.
type StubRepositoryFactory struct {
	UserRepository    repository.UserRepository
	ProfileRepository repository.ProfileRepository
	ProductRepository repository.ProductRepository
	StateRepository   repository.StateRepository
	CityRepository    repository.CityRepository
	AddressRepository repository.AddressRepository
	OrderRepository   repository.OrderRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *StubRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return f.ProfileRepository
}

func (f *StubRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.ProductRepository
}

func (f *StubRepositoryFactory) StateRepo() repository.StateRepository {
	return f.StateRepository
}

func (f *StubRepositoryFactory) CityRepo() repository.CityRepository {
	return f.CityRepository
}

func (f *StubRepositoryFactory) AddressRepo() repository.AddressRepository {
	return f.AddressRepository
}

func (f *StubRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.OrderRepository
}

// StubTransactionManager executes the callback immediately against the given
// factory, standing in for a real transaction in tests.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
