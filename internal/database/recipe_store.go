package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// ErrNotFound is returned when no recipe has the requested id
var ErrNotFound = errors.New("recipe not found")

// RecipeStore is the system of record for recipes
type RecipeStore interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id string) (*model.Recipe, error)
	FindAll(ctx context.Context) ([]model.Recipe, error)
	FindByTitle(ctx context.Context, fragment string) ([]model.Recipe, error)
	FindByCreator(ctx context.Context, username string) ([]model.Recipe, error)
	FindFiltered(ctx context.Context, filter types.RecipeFilter) ([]model.Recipe, error)
	FindSorted(ctx context.Context, field string) ([]model.Recipe, error)
	FindPage(ctx context.Context, req types.PageRequest) ([]model.Recipe, int64, error)
	Save(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// sortColumns maps the API field names that may be sorted on to columns
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"cookingTime": "cooking_time",
	"category":    "category",
	"createdBy":   "created_by",
}

// SortColumn returns the column for an API sort field
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// GormRecipeStore implements RecipeStore on top of gorm
type GormRecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new GormRecipeStore
func NewRecipeStore(db *gorm.DB) *GormRecipeStore {
	return &GormRecipeStore{db: db}
}

func (s *GormRecipeStore) Create(ctx context.Context, recipe *model.Recipe) error {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (s *GormRecipeStore) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	return &recipe, nil
}

func (s *GormRecipeStore) FindAll(ctx context.Context) ([]model.Recipe, error) {
	return s.find(s.db.WithContext(ctx).Order("created_at, id"))
}

// FindByTitle matches fragment anywhere in the title, ignoring case
func (s *GormRecipeStore) FindByTitle(ctx context.Context, fragment string) ([]model.Recipe, error) {
	like := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	return s.find(s.db.WithContext(ctx).
		Where(`LOWER(title) LIKE ? ESCAPE '\'`, like).
		Order("created_at, id"))
}

func (s *GormRecipeStore) FindByCreator(ctx context.Context, username string) ([]model.Recipe, error) {
	return s.find(s.db.WithContext(ctx).Where("created_by = ?", username).Order("created_at, id"))
}

// FindFiltered ANDs together every predicate set in filter
func (s *GormRecipeStore) FindFiltered(ctx context.Context, filter types.RecipeFilter) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx)
	if filter.Category != nil {
		query = query.Where("LOWER(category) = ?", strings.ToLower(*filter.Category))
	}
	if filter.MinTime != nil {
		query = query.Where("cooking_time >= ?", *filter.MinTime)
	}
	if filter.MaxTime != nil {
		query = query.Where("cooking_time <= ?", *filter.MaxTime)
	}
	return s.find(query.Order("created_at, id"))
}

// FindSorted returns every recipe ascending by an API sort field
func (s *GormRecipeStore) FindSorted(ctx context.Context, field string) ([]model.Recipe, error) {
	col, ok := SortColumn(field)
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", field)
	}
	return s.find(s.db.WithContext(ctx).Order(col + ", id"))
}

// FindPage returns one page and the total number of recipes
func (s *GormRecipeStore) FindPage(ctx context.Context, req types.PageRequest) ([]model.Recipe, int64, error) {
	col, ok := SortColumn(req.SortBy)
	if !ok {
		return nil, 0, fmt.Errorf("unsupported sort field %q", req.SortBy)
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	recipes, err := s.find(s.db.WithContext(ctx).
		Order(col + ", id").
		Offset(req.Page * req.Size).
		Limit(req.Size))
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Save overwrites the mutable fields of an existing recipe. id, createdBy and
// createdAt are never written.
func (s *GormRecipeStore) Save(ctx context.Context, recipe *model.Recipe) error {
	recipe.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", recipe.ID).
		Select("title", "ingredients", "instructions", "cooking_time", "category", "updated_at").
		Updates(recipe)
	if result.Error != nil {
		return fmt.Errorf("save recipe %s: %w", recipe.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormRecipeStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete recipe %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormRecipeStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Recipe{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete all recipes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormRecipeStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check recipe %s: %w", id, err)
	}
	return count > 0, nil
}

func (s *GormRecipeStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

func (s *GormRecipeStore) find(query *gorm.DB) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	return recipes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
