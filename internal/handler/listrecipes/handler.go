package listrecipes

import (
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

func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipes, err := h.recipes.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "listrecipes: getting recipes", "error", err, "uid", auth.UID(ctx))
		httpjson.Error(w, http.StatusInternalServerError, "Error getting recipes")
		return
	}

	httpjson.Write(w, http.StatusOK, recipes)
}
