// Package routes wires the HTTP API onto a mux.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/mida-hub/recipe-box/internal/auth"
	"github.com/mida-hub/recipe-box/internal/handler/createrecipe"
	"github.com/mida-hub/recipe-box/internal/handler/deleterecipe"
	"github.com/mida-hub/recipe-box/internal/handler/getrecipe"
	"github.com/mida-hub/recipe-box/internal/handler/listrecipes"
	"github.com/mida-hub/recipe-box/internal/handler/updaterecipe"
	"github.com/mida-hub/recipe-box/internal/handler/uploadimage"
	"github.com/mida-hub/recipe-box/internal/images"
	"github.com/mida-hub/recipe-box/internal/recipedb"
)

// Register mounts the API on mux. Every route under /api requires a verified
// bearer token; the root greeting does not.
func Register(mux *chi.Mux, verifier auth.Verifier, recipes recipedb.Recipes, imageStore images.Store, allowedOrigins []string) {
	mux.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	mux.Use(middleware.Maybe(auth.Middleware(verifier), func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/")
	}))

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Hello from the backend!")
	})

	mux.Route("/api", func(r chi.Router) {
		r.Get("/recipes", listrecipes.NewHandler(recipes).ListRecipes)
		r.Post("/recipes", createrecipe.NewHandler(recipes).CreateRecipe)
		r.Get("/recipes/{recipeID}", getrecipe.NewHandler(recipes).GetRecipe)
		r.Put("/recipes/{recipeID}", updaterecipe.NewHandler(recipes).UpdateRecipe)
		r.Delete("/recipes/{recipeID}", deleterecipe.NewHandler(recipes).DeleteRecipe)
		r.Post("/images/upload", uploadimage.NewHandler(imageStore).UploadImage)
	})
}
