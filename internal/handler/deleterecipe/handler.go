package deleterecipe

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mida-hub/recipe-box/internal/auth"
	"github.com/mida-hub/recipe-box/internal/errs"
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

// DeleteRecipe permanently removes a recipe. There is no soft delete and no
// recovery; uploaded step images are not reclaimed.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "recipeID")

	if err := h.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Recipe not found")
			return
		}
		slog.ErrorContext(ctx, "deleterecipe: deleting recipe", "error", err, "id", id, "uid", auth.UID(ctx))
		httpjson.Error(w, http.StatusInternalServerError, "Error deleting recipe")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
