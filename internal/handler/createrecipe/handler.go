package createrecipe

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mida-hub/recipe-box/internal/auth"
	"github.com/mida-hub/recipe-box/internal/httpjson"
	"github.com/mida-hub/recipe-box/internal/recipedb"
)

func NewHandler(recipes recipedb.Recipes) *Handler {
	return &Handler{
		recipes: recipes,
	}
}

type Handler struct {
	recipes recipedb.Recipes
}

func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input recipedb.RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "Title is required")
		return
	}

	rec, err := h.recipes.Create(ctx, input, auth.UID(ctx))
	if err != nil {
		slog.ErrorContext(ctx, "createrecipe: creating recipe", "error", err, "uid", auth.UID(ctx))
		httpjson.Error(w, http.StatusInternalServerError, "Error creating recipe")
		return
	}

	httpjson.Write(w, http.StatusCreated, rec)
}
