package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/middleware"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

const (
	defaultPage   = 0
	defaultSize   = 5
	defaultSortBy = "title"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe endpoints. Every route is reachable
// anonymously; the service decides what an anonymous caller may do.
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/page", h.PageRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/filter", h.FilterRecipes)
		recipes.GET("/sort", h.SortRecipes)
		recipes.GET("/mine", h.ListMyRecipes)
		recipes.DELETE("/deleteAll", h.DeleteAllRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipeService.Delete(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Recipe deleted successfully!"})
}

func (h *RecipeHandler) DeleteAllRecipes(c *gin.Context) {
	deleted, err := h.recipeService.DeleteAll(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, DeleteAllResponse{
		Message: "All recipes deleted successfully!",
		Deleted: deleted,
	})
}

func (h *RecipeHandler) PageRecipes(c *gin.Context) {
	page, err := intQuery(c, "page", defaultPage)
	if err != nil {
		c.Error(err)
		return
	}
	size, err := intQuery(c, "size", defaultSize)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.recipeService.Page(c.Request.Context(), types.PageRequest{
		Page:   page,
		Size:   size,
		SortBy: c.DefaultQuery("sortBy", defaultSortBy),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	title, ok := c.GetQuery("title")
	if !ok {
		c.Error(&service.FieldError{Field: "title", Message: "query parameter is required"})
		return
	}

	recipes, err := h.recipeService.Search(c.Request.Context(), title)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) FilterRecipes(c *gin.Context) {
	minTime, err := optionalIntQuery(c, "minTime")
	if err != nil {
		c.Error(err)
		return
	}
	maxTime, err := optionalIntQuery(c, "maxTime")
	if err != nil {
		c.Error(err)
		return
	}

	filter := types.RecipeFilter{MinTime: minTime, MaxTime: maxTime}
	if category, ok := c.GetQuery("category"); ok {
		filter.Category = &category
	}

	recipes, err := h.recipeService.Filter(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) SortRecipes(c *gin.Context) {
	by, ok := c.GetQuery("by")
	if !ok {
		c.Error(&service.FieldError{Field: "by", Message: "query parameter is required"})
		return
	}

	recipes, err := h.recipeService.Sort(c.Request.Context(), by)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListMine(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.FieldError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return v, nil
}

// optionalIntQuery treats an absent or empty parameter as unset
func optionalIntQuery(c *gin.Context, key string) (*int, error) {
	if c.Query(key) == "" {
		return nil, nil
	}
	v, err := intQuery(c, key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
