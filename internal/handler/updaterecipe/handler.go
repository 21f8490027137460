package updaterecipe

import (
	"encoding/json"
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

// UpdateRecipe merges the fields present in the request body into the stored
// recipe. Fields absent from the body keep their stored values.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "recipeID")

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.recipes.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Recipe not found")
			return
		}
		slog.ErrorContext(ctx, "updaterecipe: updating recipe", "error", err, "id", id, "uid", auth.UID(ctx))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating recipe")
		return
	}

	httpjson.Write(w, http.StatusOK, rec)
}
