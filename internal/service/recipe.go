package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/policy"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// SortableFields are the only fields accepted by Sort
var SortableFields = []string{"title", "cookingTime"}

// RecipeService applies validation and the access policy around the store
type RecipeService struct {
	store database.RecipeStore
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store database.RecipeStore) *RecipeService {
	return &RecipeService{store: store}
}

func validateRecipe(req *types.RecipeRequest) error {
	if req == nil {
		return invalid("body", "is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return invalid("title", "is required")
	}
	if len(req.Ingredients) == 0 {
		return invalid("ingredients", "must contain at least one ingredient")
	}
	if req.CookingTime == nil {
		return invalid("cookingTime", "is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return invalid("category", "is required")
	}
	return nil
}

func applyRequest(recipe *model.Recipe, req *types.RecipeRequest) {
	recipe.Title = req.Title
	recipe.Ingredients = model.StringList(req.Ingredients)
	recipe.Instructions = model.StringList(req.Instructions)
	if recipe.Instructions == nil {
		recipe.Instructions = model.StringList{}
	}
	recipe.CookingTime = *req.CookingTime
	recipe.Category = req.Category
}

// Create stores a new recipe owned by the caller
func (s *RecipeService) Create(ctx context.Context, identity *types.Identity, req *types.RecipeRequest) (*model.Recipe, error) {
	if err := validateRecipe(req); err != nil {
		return nil, err
	}
	if err := policy.Authorize(identity, policy.OpCreate, ""); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{CreatedBy: identity.Username}
	applyRequest(recipe, req)
	if err := s.store.Create(ctx, recipe); err != nil {
		return nil, err
	}

	slog.Info("recipe created", "id", recipe.ID, "created_by", recipe.CreatedBy)
	return recipe, nil
}

func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	return s.store.FindAll(ctx)
}

func (s *RecipeService) Get(ctx context.Context, id string) (*model.Recipe, error) {
	return s.store.FindByID(ctx, id)
}

// Update replaces the mutable fields of a recipe owned by the caller, or any
// recipe for an admin
func (s *RecipeService) Update(ctx context.Context, identity *types.Identity, id string, req *types.RecipeRequest) (*model.Recipe, error) {
	if err := validateRecipe(req); err != nil {
		return nil, err
	}

	recipe, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(identity, policy.OpUpdate, recipe.CreatedBy); err != nil {
		slog.Warn("recipe update denied", "id", id, "user", username(identity), "created_by", recipe.CreatedBy)
		return nil, fmt.Errorf("you can only update your own recipes: %w", err)
	}

	applyRequest(recipe, req)
	if err := s.store.Save(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe owned by the caller, or any recipe for an admin
func (s *RecipeService) Delete(ctx context.Context, identity *types.Identity, id string) error {
	recipe, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.Info("recipe not found for deletion", "id", id)
		}
		return err
	}

	slog.Info("recipe deletion requested",
		"id", id,
		"user", username(identity),
		"admin", identity.HasRole(types.RoleAdmin),
		"created_by", recipe.CreatedBy,
	)

	if err := policy.Authorize(identity, policy.OpDelete, recipe.CreatedBy); err != nil {
		slog.Warn("recipe deletion denied", "id", id, "user", username(identity))
		return fmt.Errorf("you can only delete your own recipes: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("recipe deleted", "id", id)
	return nil
}

// DeleteAll removes every recipe and returns how many were removed
func (s *RecipeService) DeleteAll(ctx context.Context, identity *types.Identity) (int64, error) {
	if err := policy.Authorize(identity, policy.OpDeleteAll, ""); err != nil {
		slog.Warn("delete all denied", "user", username(identity))
		return 0, fmt.Errorf("only administrators can delete all recipes: %w", err)
	}

	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	slog.Info("all recipes deleted", "count", n, "user", identity.Username)
	return n, nil
}

// Page returns one page ordered ascending by req.SortBy
func (s *RecipeService) Page(ctx context.Context, req types.PageRequest) (*types.Page[model.Recipe], error) {
	if req.Page < 0 {
		return nil, invalid("page", "must not be negative")
	}
	if req.Size <= 0 {
		return nil, invalid("size", "must be positive")
	}
	if _, ok := database.SortColumn(req.SortBy); !ok {
		return nil, invalid("sortBy", fmt.Sprintf("cannot sort by %q", req.SortBy))
	}

	var (
		content []model.Recipe
		total   int64
		err     error
	)
	if req.Page > math.MaxInt/req.Size {
		// The offset would overflow, so the page lies past any stored row
		content = []model.Recipe{}
		total, err = s.store.Count(ctx)
	} else {
		content, total, err = s.store.FindPage(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	return &types.Page[model.Recipe]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
	}, nil
}

// Search matches title case-insensitively anywhere in the recipe title
func (s *RecipeService) Search(ctx context.Context, title string) ([]model.Recipe, error) {
	return s.store.FindByTitle(ctx, title)
}

func (s *RecipeService) Filter(ctx context.Context, filter types.RecipeFilter) ([]model.Recipe, error) {
	return s.store.FindFiltered(ctx, filter)
}

// Sort orders all recipes by one of SortableFields. Any other field yields an
// empty result rather than an error.
func (s *RecipeService) Sort(ctx context.Context, by string) ([]model.Recipe, error) {
	if !isSortable(by) {
		return []model.Recipe{}, nil
	}
	return s.store.FindSorted(ctx, by)
}

// ListMine returns the recipes created by the caller
func (s *RecipeService) ListMine(ctx context.Context, identity *types.Identity) ([]model.Recipe, error) {
	if err := policy.Authorize(identity, policy.OpListMine, ""); err != nil {
		return nil, err
	}
	return s.store.FindByCreator(ctx, identity.Username)
}

func totalPages(total int64, size int) int {
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

func isSortable(field string) bool {
	return slices.Contains(SortableFields, field)
}

func username(identity *types.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.Username
}
