package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/logger"
	"github.com/pageza/recipe-api/backend/internal/model"
)

var sampleRecipes = []model.Recipe{
	{
		Title:        "Spaghetti Aglio e Olio",
		Ingredients:  model.StringList{"spaghetti", "garlic", "olive oil", "chili flakes", "parsley"},
		Instructions: model.StringList{"Boil pasta", "Fry sliced garlic in oil", "Toss pasta with oil and chili"},
		CookingTime:  20,
		Category:     "Main",
	},
	{
		Title:        "Overnight Oats",
		Ingredients:  model.StringList{"rolled oats", "milk", "yogurt", "honey"},
		Instructions: model.StringList{"Mix everything in a jar", "Refrigerate overnight"},
		CookingTime:  5,
		Category:     "Breakfast",
	},
	{
		Title:        "Chickpea Curry",
		Ingredients:  model.StringList{"chickpeas", "onion", "tomatoes", "coconut milk", "curry powder"},
		Instructions: model.StringList{"Soften onion", "Add spices and tomatoes", "Simmer with chickpeas and coconut milk"},
		CookingTime:  35,
		Category:     "Main",
	},
	{
		Title:        "Greek Salad",
		Ingredients:  model.StringList{"cucumber", "tomatoes", "feta", "olives", "red onion"},
		Instructions: model.StringList{"Chop vegetables", "Top with feta and olives"},
		CookingTime:  10,
		Category:     "Salad",
	},
	{
		Title:        "Banana Bread",
		Ingredients:  model.StringList{"bananas", "flour", "butter", "sugar", "eggs", "baking soda"},
		Instructions: model.StringList{"Mash bananas", "Combine wet and dry ingredients", "Bake for an hour"},
		CookingTime:  70,
		Category:     "Dessert",
	},
	{
		Title:        "Miso Soup",
		Ingredients:  model.StringList{"dashi", "miso paste", "tofu", "wakame", "scallions"},
		Instructions: model.StringList{"Heat dashi", "Whisk in miso off the boil", "Add tofu and wakame"},
		CookingTime:  15,
		Category:     "Soup",
	},
}

// sampleNamespace derives stable ids so re-running the seeder is a no-op
var sampleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("recipe-api/samples"))

func sampleID(title string) string {
	return uuid.NewSHA1(sampleNamespace, []byte(title)).String()
}

// seed stores every sample recipe not already present and returns how many
// were created
func seed(ctx context.Context, store database.RecipeStore, owner string) (int, error) {
	created := 0
	for _, sample := range sampleRecipes {
		recipe := sample
		recipe.ID = sampleID(recipe.Title)
		recipe.CreatedBy = owner

		exists, err := store.Exists(ctx, recipe.ID)
		if err != nil {
			return created, err
		}
		if exists {
			slog.Info("sample recipe already present", "id", recipe.ID, "title", recipe.Title)
			continue
		}

		if err := store.Create(ctx, &recipe); err != nil {
			return created, fmt.Errorf("seed %q: %w", recipe.Title, err)
		}
		slog.Info("seeded recipe", "id", recipe.ID, "title", recipe.Title)
		created++
	}
	return created, nil
}

func main() {
	owner := flag.String("owner", "", "Username recorded as the creator (defaults to the admin username)")
	flag.Parse()

	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *owner == "" {
		*owner = cfg.AdminUsername
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	created, err := seed(context.Background(), database.NewRecipeStore(db), *owner)
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding complete", "created", created, "samples", len(sampleRecipes))
}
