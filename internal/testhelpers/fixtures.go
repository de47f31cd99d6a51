package testhelpers

import (
	"context"
	"testing"

	"github.com/pageza/recipe-api/backend/internal/model"
)

// Creator is the part of the recipe store fixtures need
type Creator interface {
	Create(ctx context.Context, recipe *model.Recipe) error
}

// NewRecipe builds a valid recipe owned by owner
func NewRecipe(title, category string, cookingTime int, owner string) *model.Recipe {
	return &model.Recipe{
		Title:        title,
		Ingredients:  model.StringList{"salt", "pepper"},
		Instructions: model.StringList{"mix", "cook"},
		CookingTime:  cookingTime,
		Category:     category,
		CreatedBy:    owner,
	}
}

// SeedRecipes stores each recipe and fails the test on error
func SeedRecipes(t *testing.T, store Creator, recipes ...*model.Recipe) {
	t.Helper()
	for _, r := range recipes {
		if err := store.Create(context.Background(), r); err != nil {
			t.Fatalf("failed to seed recipe %q: %v", r.Title, err)
		}
	}
}
