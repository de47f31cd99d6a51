package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/testhelpers"
)

func TestSeedIsIdempotent(t *testing.T) {
	store := database.NewRecipeStore(testhelpers.SetupSQLite(t))
	ctx := context.Background()

	created, err := seed(ctx, store, "admin")
	require.NoError(t, err)
	assert.Equal(t, len(sampleRecipes), created)

	created, err = seed(ctx, store, "admin")
	require.NoError(t, err)
	assert.Zero(t, created)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleRecipes)), count)

	recipe, err := store.FindByID(ctx, sampleID(sampleRecipes[0].Title))
	require.NoError(t, err)
	assert.Equal(t, "admin", recipe.CreatedBy)
}
