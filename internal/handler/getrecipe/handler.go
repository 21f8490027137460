package getrecipe

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

func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "recipeID")

	rec, err := h.recipes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Recipe not found")
			return
		}
		slog.ErrorContext(ctx, "getrecipe: getting recipe", "error", err, "id", id, "uid", auth.UID(ctx))
		httpjson.Error(w, http.StatusInternalServerError, "Error getting recipe")
		return
	}

	httpjson.Write(w, http.StatusOK, rec)
}
