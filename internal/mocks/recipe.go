package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// MockRecipeStore is a mock implementation of database.RecipeStore
type MockRecipeStore struct {
	mock.Mock
}

func recipes(args mock.Arguments) []model.Recipe {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Recipe)
}

// Create mocks the Create method
func (m *MockRecipeStore) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockRecipeStore) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// FindAll mocks the FindAll method
func (m *MockRecipeStore) FindAll(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args), args.Error(1)
}

// FindByTitle mocks the FindByTitle method
func (m *MockRecipeStore) FindByTitle(ctx context.Context, fragment string) ([]model.Recipe, error) {
	args := m.Called(ctx, fragment)
	return recipes(args), args.Error(1)
}

// FindByCreator mocks the FindByCreator method
func (m *MockRecipeStore) FindByCreator(ctx context.Context, username string) ([]model.Recipe, error) {
	args := m.Called(ctx, username)
	return recipes(args), args.Error(1)
}

// FindFiltered mocks the FindFiltered method
func (m *MockRecipeStore) FindFiltered(ctx context.Context, filter types.RecipeFilter) ([]model.Recipe, error) {
	args := m.Called(ctx, filter)
	return recipes(args), args.Error(1)
}

// FindSorted mocks the FindSorted method
func (m *MockRecipeStore) FindSorted(ctx context.Context, field string) ([]model.Recipe, error) {
	args := m.Called(ctx, field)
	return recipes(args), args.Error(1)
}

// FindPage mocks the FindPage method
func (m *MockRecipeStore) FindPage(ctx context.Context, req types.PageRequest) ([]model.Recipe, int64, error) {
	args := m.Called(ctx, req)
	return recipes(args), args.Get(1).(int64), args.Error(2)
}

// Save mocks the Save method
func (m *MockRecipeStore) Save(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockRecipeStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteAll mocks the DeleteAll method
func (m *MockRecipeStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockRecipeStore) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Count mocks the Count method
func (m *MockRecipeStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
