package recipedb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mida-hub/recipe-box/internal/errs"
)

const collection = "recipes"

// Recipes is the store of recipe documents. All recipes are visible to every
// authenticated user; ownership only records provenance.
type Recipes interface {
	// List returns every recipe in the collection.
	List(ctx context.Context) ([]Recipe, error)

	// Create stores a new recipe owned by userID and returns it with its
	// generated id.
	Create(ctx context.Context, input RecipeInput, userID string) (Recipe, error)

	// Get returns the recipe with the given id, or errs.ErrNotFound.
	Get(ctx context.Context, id string) (Recipe, error)

	// Update merges the patch into the recipe with the given id and returns
	// the merged view, or errs.ErrNotFound. The merged view is computed from
	// a read taken before the write, so concurrent updates race with
	// last-write-wins semantics.
	Update(ctx context.Context, id string, patch map[string]any) (Recipe, error)

	// Delete permanently removes the recipe with the given id, or returns
	// errs.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// FirestoreRecipes implements Recipes on a Firestore collection.
type FirestoreRecipes struct {
	client *firestore.Client
}

var _ Recipes = (*FirestoreRecipes)(nil)

func NewFirestore(client *firestore.Client) *FirestoreRecipes {
	return &FirestoreRecipes{
		client: client,
	}
}

func (s *FirestoreRecipes) List(ctx context.Context) ([]Recipe, error) {
	docs, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("recipedb: getting recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(docs))
	for _, doc := range docs {
		var rec Recipe
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("recipedb: unmarshalling recipe %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

func (s *FirestoreRecipes) Create(ctx context.Context, input RecipeInput, userID string) (Recipe, error) {
	rec := input.withDefaults()
	rec.UserID = userID

	doc := s.client.Collection(collection).NewDoc()
	if _, err := doc.Create(ctx, rec); err != nil {
		return Recipe{}, fmt.Errorf("recipedb: creating recipe: %w", err)
	}
	rec.ID = doc.ID
	return rec, nil
}

func (s *FirestoreRecipes) Get(ctx context.Context, id string) (Recipe, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Recipe{}, errs.ErrNotFound
		}
		return Recipe{}, fmt.Errorf("recipedb: getting recipe %s: %w", id, err)
	}

	var rec Recipe
	if err := snap.DataTo(&rec); err != nil {
		return Recipe{}, fmt.Errorf("recipedb: unmarshalling recipe %s: %w", id, err)
	}
	rec.ID = id
	return rec, nil
}

func (s *FirestoreRecipes) Update(ctx context.Context, id string, patch map[string]any) (Recipe, error) {
	ref := s.client.Collection(collection).Doc(id)
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Recipe{}, errs.ErrNotFound
		}
		return Recipe{}, fmt.Errorf("recipedb: getting recipe %s: %w", id, err)
	}

	var rec Recipe
	if err := snap.DataTo(&rec); err != nil {
		return Recipe{}, fmt.Errorf("recipedb: unmarshalling recipe %s: %w", id, err)
	}
	rec.ID = id

	patch = NormalizePatch(patch)
	if len(patch) > 0 {
		if _, err := ref.Set(ctx, patch, firestore.MergeAll); err != nil {
			return Recipe{}, fmt.Errorf("recipedb: updating recipe %s: %w", id, err)
		}
	}

	ApplyPatch(&rec, patch)
	return rec, nil
}

func (s *FirestoreRecipes) Delete(ctx context.Context, id string) error {
	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.ErrNotFound
		}
		return fmt.Errorf("recipedb: getting recipe %s: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("recipedb: deleting recipe %s: %w", id, err)
	}
	return nil
}
