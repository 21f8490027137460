package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mida-hub/recipe-box/internal/errs"
	"github.com/mida-hub/recipe-box/internal/recipedb"
)

type fakeVerifier struct{}

func (fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbauth.Token, error) {
	if idToken != "good-token" {
		return nil, errors.New("invalid token")
	}
	return &fbauth.Token{UID: "user-1"}, nil
}

type memRecipes struct {
	mu      sync.Mutex
	seq     int
	recipes map[string]recipedb.Recipe
}

var _ recipedb.Recipes = (*memRecipes)(nil)

func newMemRecipes() *memRecipes {
	return &memRecipes{recipes: map[string]recipedb.Recipe{}}
}

func (m *memRecipes) List(_ context.Context) ([]recipedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recipedb.Recipe, 0, len(m.recipes))
	for _, rec := range m.recipes {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memRecipes) Create(_ context.Context, input recipedb.RecipeInput, userID string) (recipedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	rec := recipedb.Recipe{
		ID:          fmt.Sprintf("doc-%d", m.seq),
		Title:       input.Title,
		IsFavorite:  input.IsFavorite,
		Notes:       input.Notes,
		Link:        input.Link,
		Ingredients: input.Ingredients,
		Steps:       input.Steps,
		UserID:      userID,
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []recipedb.Ingredient{}
	}
	if rec.Steps == nil {
		rec.Steps = []recipedb.Step{}
	}
	m.recipes[rec.ID] = rec
	return rec, nil
}

func (m *memRecipes) Get(_ context.Context, id string) (recipedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recipes[id]
	if !ok {
		return recipedb.Recipe{}, errs.ErrNotFound
	}
	return rec, nil
}

func (m *memRecipes) Update(_ context.Context, id string, patch map[string]any) (recipedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recipes[id]
	if !ok {
		return recipedb.Recipe{}, errs.ErrNotFound
	}
	recipedb.ApplyPatch(&rec, recipedb.NormalizePatch(patch))
	m.recipes[id] = rec
	return rec, nil
}

func (m *memRecipes) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.recipes, id)
	return nil
}

type memImages struct {
	mu    sync.Mutex
	saved map[string][]byte
}

func (m *memImages) Save(_ context.Context, path string, _ string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[path] = append([]byte(nil), data...)
	return "https://storage.googleapis.com/test-bucket/" + path, nil
}

func newServer(t *testing.T) (*httptest.Server, *memRecipes) {
	t.Helper()
	mux := chi.NewRouter()
	repo := newMemRecipes()
	Register(mux, fakeVerifier{}, repo, &memImages{}, []string{"http://localhost:3000"})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func do(t *testing.T, method string, url string, token string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestGreetingRequiresNoAuth(t *testing.T) {
	srv, _ := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecipeRoutesRequireAuth(t *testing.T) {
	srv, repo := newServer(t)
	seed, err := repo.Create(context.Background(), recipedb.RecipeInput{Title: "Seed"}, "user-1")
	require.NoError(t, err)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/recipes"},
		{http.MethodPost, "/api/recipes"},
		{http.MethodGet, "/api/recipes/" + seed.ID},
		{http.MethodPut, "/api/recipes/" + seed.ID},
		{http.MethodDelete, "/api/recipes/" + seed.ID},
		{http.MethodPost, "/api/images/upload"},
	} {
		resp := do(t, tc.method, srv.URL+tc.path, "", "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s without token", tc.method, tc.path)

		resp = do(t, tc.method, srv.URL+tc.path, "forged-token", "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s with bad token", tc.method, tc.path)
	}

	// Nothing was modified by the rejected requests.
	_, err = repo.Get(context.Background(), seed.ID)
	require.NoError(t, err)
}

func TestCORSAllowList(t *testing.T) {
	srv, _ := newServer(t)

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/recipes", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	allowed := preflight("http://localhost:3000")
	require.Equal(t, "http://localhost:3000", allowed.Header.Get("Access-Control-Allow-Origin"))

	denied := preflight("https://evil.example.com")
	require.Empty(t, denied.Header.Get("Access-Control-Allow-Origin"))
}

func TestRecipeLifecycle(t *testing.T) {
	srv, _ := newServer(t)

	// Create.
	resp := do(t, http.MethodPost, srv.URL+"/api/recipes", "good-token",
		`{"title": "Curry", "ingredients": [{"name": "onion", "quantity": "1"}], "steps": []}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created recipedb.Recipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Curry", created.Title)
	require.Equal(t, "user-1", created.UserID)
	require.Equal(t, []recipedb.Ingredient{{Name: "onion", Quantity: "1"}}, created.Ingredients)

	// The list contains exactly the created record.
	resp = do(t, http.MethodGet, srv.URL+"/api/recipes", "good-token", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []recipedb.Recipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])

	// Merge update keeps unpatched fields.
	resp = do(t, http.MethodPut, srv.URL+"/api/recipes/"+created.ID, "good-token", `{"isFavorite": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated recipedb.Recipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.True(t, updated.IsFavorite)
	require.Equal(t, "Curry", updated.Title)

	// Delete is permanent.
	resp = do(t, http.MethodDelete, srv.URL+"/api/recipes/"+created.ID, "good-token", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/recipes", "good-token", "")
	var remaining []recipedb.Recipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&remaining))
	require.Empty(t, remaining)
}

func TestUnknownRecipeID(t *testing.T) {
	srv, _ := newServer(t)

	resp := do(t, http.MethodPut, srv.URL+"/api/recipes/missing", "good-token", `{"title": "A"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/recipes/missing", "good-token", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
