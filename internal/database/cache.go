package database

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-api/backend/internal/model"
)

const recipeKeyPrefix = "recipe:"

// CachedRecipeStore serves FindByID from Redis and invalidates entries on
// every write. Cache failures are logged and fall through to the wrapped store.
type CachedRecipeStore struct {
	RecipeStore
	redis *redis.Client
	ttl   time.Duration
}

// NewCachedRecipeStore wraps store with a Redis read-through cache
func NewCachedRecipeStore(store RecipeStore, client *redis.Client, ttl time.Duration) *CachedRecipeStore {
	return &CachedRecipeStore{
		RecipeStore: store,
		redis:       client,
		ttl:         ttl,
	}
}

func recipeKey(id string) string {
	return recipeKeyPrefix + id
}

func (s *CachedRecipeStore) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	data, err := s.redis.Get(ctx, recipeKey(id)).Bytes()
	switch {
	case err == nil:
		var recipe model.Recipe
		if jsonErr := json.Unmarshal(data, &recipe); jsonErr == nil {
			return &recipe, nil
		}
		slog.Warn("discarding corrupt cache entry", "id", id)
	case !errors.Is(err, redis.Nil):
		slog.Warn("recipe cache read failed", "id", id, "error", err)
	}

	recipe, err := s.RecipeStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipe); err == nil {
		if err := s.redis.Set(ctx, recipeKey(id), data, s.ttl).Err(); err != nil {
			slog.Warn("recipe cache write failed", "id", id, "error", err)
		}
	}
	return recipe, nil
}

func (s *CachedRecipeStore) Save(ctx context.Context, recipe *model.Recipe) error {
	err := s.RecipeStore.Save(ctx, recipe)
	s.evict(ctx, recipe.ID)
	return err
}

func (s *CachedRecipeStore) Delete(ctx context.Context, id string) error {
	err := s.RecipeStore.Delete(ctx, id)
	s.evict(ctx, id)
	return err
}

func (s *CachedRecipeStore) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.RecipeStore.DeleteAll(ctx)

	iter := s.redis.Scan(ctx, 0, recipeKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if scanErr := iter.Err(); scanErr != nil {
		slog.Warn("recipe cache scan failed", "error", scanErr)
	}
	if len(keys) > 0 {
		if delErr := s.redis.Del(ctx, keys...).Err(); delErr != nil {
			slog.Warn("recipe cache flush failed", "error", delErr)
		}
	}
	return n, err
}

func (s *CachedRecipeStore) evict(ctx context.Context, id string) {
	if err := s.redis.Del(ctx, recipeKey(id)).Err(); err != nil {
		slog.Warn("recipe cache eviction failed", "id", id, "error", err)
	}
}
