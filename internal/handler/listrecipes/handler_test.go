package listrecipes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mida-hub/recipe-box/internal/recipedb"
)

type fakeRecipes struct {
	recipedb.Recipes

	listOut []recipedb.Recipe
	listErr error
}

func (f *fakeRecipes) List(_ context.Context) ([]recipedb.Recipe, error) {
	return f.listOut, f.listErr
}

func TestListRecipes(t *testing.T) {
	repo := &fakeRecipes{listOut: []recipedb.Recipe{
		{ID: "r1", Title: "Curry", UserID: "user-1"},
		{ID: "r2", Title: "Stew", UserID: "user-2"},
	}}

	rec := httptest.NewRecorder()
	NewHandler(repo).ListRecipes(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	require.Contains(t, body, `"id":"r1"`)
	require.Contains(t, body, `"id":"r2"`)
}

func TestListRecipesEmptyIsArray(t *testing.T) {
	repo := &fakeRecipes{listOut: []recipedb.Recipe{}}

	rec := httptest.NewRecorder()
	NewHandler(repo).ListRecipes(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListRecipesStoreError(t *testing.T) {
	repo := &fakeRecipes{listErr: errors.New("firestore down")}

	rec := httptest.NewRecorder()
	NewHandler(repo).ListRecipes(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "firestore down")
}
