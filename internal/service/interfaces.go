package service

import (
	"context"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(username, password string) (string, error)
	Verify(token string) Verification
}

// IRecipeService defines the interface for recipe operations. Identity is nil
// for anonymous callers.
type IRecipeService interface {
	Create(ctx context.Context, identity *types.Identity, req *types.RecipeRequest) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Update(ctx context.Context, identity *types.Identity, id string, req *types.RecipeRequest) (*model.Recipe, error)
	Delete(ctx context.Context, identity *types.Identity, id string) error
	DeleteAll(ctx context.Context, identity *types.Identity) (int64, error)
	Page(ctx context.Context, req types.PageRequest) (*types.Page[model.Recipe], error)
	Search(ctx context.Context, title string) ([]model.Recipe, error)
	Filter(ctx context.Context, filter types.RecipeFilter) ([]model.Recipe, error)
	Sort(ctx context.Context, by string) ([]model.Recipe, error)
	ListMine(ctx context.Context, identity *types.Identity) ([]model.Recipe, error)
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
)
