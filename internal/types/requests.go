package types

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// RecipeRequest is the body of POST /recipes and PUT /recipes/:id.
// Any id or createdBy sent by the client is not bound.
type RecipeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions"`
	CookingTime  *int     `json:"cookingTime" binding:"required"`
	Category     string   `json:"category" binding:"required"`
}

// RecipeFilter holds the optional predicates of GET /recipes/filter.
// A nil field matches every recipe. A non-nil empty Category matches none.
type RecipeFilter struct {
	Category *string
	MinTime  *int
	MaxTime  *int
}

// PageRequest selects one zero-based page of recipes ordered by SortBy
type PageRequest struct {
	Page   int
	Size   int
	SortBy string
}

// Page is one page of a paginated listing
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}
