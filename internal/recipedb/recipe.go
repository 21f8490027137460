// Package recipedb defines the recipe document model and its store.
package recipedb

// Ingredient is a single ingredient of a recipe.
type Ingredient struct {
	// Name is the name of the ingredient.
	Name string `firestore:"name" json:"name"`

	// Quantity is the quantity of the ingredient as free-form text.
	Quantity string `firestore:"quantity" json:"quantity"`
}

// Step is a single preparation step of a recipe.
type Step struct {
	// Description is the description of the step.
	Description string `firestore:"description" json:"description"`

	// ImageURLs are URLs of photos of the step, in display order.
	ImageURLs []string `firestore:"imageUrls" json:"imageUrls"`
}

// Recipe is a recipe document. The document id is not stored as a field,
// it is merged in from the document reference.
type Recipe struct {
	// ID is the generated id of the recipe document.
	ID string `firestore:"-" json:"id"`

	// Title is the display title of the recipe.
	Title string `firestore:"title" json:"title"`

	// IsFavorite marks the recipe as a favorite.
	IsFavorite bool `firestore:"isFavorite" json:"isFavorite"`

	// Notes are free-form notes about the recipe.
	Notes string `firestore:"notes" json:"notes"`

	// Link is an optional URL referencing the source of the recipe.
	Link string `firestore:"link" json:"link"`

	// Ingredients are the ingredients of the recipe, in display order.
	Ingredients []Ingredient `firestore:"ingredients" json:"ingredients"`

	// Steps are the preparation steps of the recipe, in display order.
	Steps []Step `firestore:"steps" json:"steps"`

	// UserID is the id of the user who created the recipe. It is stamped
	// from the verified token at creation and never taken from client input.
	UserID string `firestore:"userId" json:"userId"`
}

// RecipeInput is the client-supplied portion of a recipe. Title is required
// on create, everything else defaults.
type RecipeInput struct {
	Title       string       `json:"title"`
	IsFavorite  bool         `json:"isFavorite"`
	Notes       string       `json:"notes"`
	Link        string       `json:"link"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}

// withDefaults converts the input to a recipe, filling absent fields with
// their defaults. Slices are never nil so they render as empty arrays.
func (in RecipeInput) withDefaults() Recipe {
	rec := Recipe{
		Title:       in.Title,
		IsFavorite:  in.IsFavorite,
		Notes:       in.Notes,
		Link:        in.Link,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []Ingredient{}
	}
	if rec.Steps == nil {
		rec.Steps = []Step{}
	}
	for i, step := range rec.Steps {
		if step.ImageURLs == nil {
			rec.Steps[i].ImageURLs = []string{}
		}
	}
	return rec
}

// NormalizePatch drops patch keys that clients may not write, notably id and
// userId, keeping only recipe input fields.
func NormalizePatch(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		switch k {
		case "title", "isFavorite", "notes", "link", "ingredients", "steps":
			out[k] = v
		}
	}
	return out
}

// ApplyPatch overwrites exactly the fields present in the normalized patch,
// leaving all other fields untouched. Values have the shapes produced by
// decoding a JSON request body; mistyped values are ignored.
func ApplyPatch(rec *Recipe, patch map[string]any) {
	for k, v := range patch {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				rec.Title = s
			}
		case "isFavorite":
			if b, ok := v.(bool); ok {
				rec.IsFavorite = b
			}
		case "notes":
			if s, ok := v.(string); ok {
				rec.Notes = s
			}
		case "link":
			if s, ok := v.(string); ok {
				rec.Link = s
			}
		case "ingredients":
			if items, ok := v.([]any); ok {
				rec.Ingredients = decodeIngredients(items)
			}
		case "steps":
			if items, ok := v.([]any); ok {
				rec.Steps = decodeSteps(items)
			}
		}
	}
}

func decodeIngredients(items []any) []Ingredient {
	ingredients := make([]Ingredient, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var ing Ingredient
		ing.Name, _ = fields["name"].(string)
		ing.Quantity, _ = fields["quantity"].(string)
		ingredients = append(ingredients, ing)
	}
	return ingredients
}

func decodeSteps(items []any) []Step {
	steps := make([]Step, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		step := Step{ImageURLs: []string{}}
		step.Description, _ = fields["description"].(string)
		if urls, ok := fields["imageUrls"].([]any); ok {
			for _, u := range urls {
				if s, ok := u.(string); ok {
					step.ImageURLs = append(step.ImageURLs, s)
				}
			}
		}
		steps = append(steps, step)
	}
	return steps
}
