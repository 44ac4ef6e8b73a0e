package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingredient is a subdocument of Recipe. Quantity is deliberately free text
// ("1 1/2", "a pinch") — no numeric parsing or unit normalization happens
// anywhere.
type Ingredient struct {
	Name     string `bson:"name" json:"name"`
	Quantity string `bson:"quantity" json:"quantity"`
	Unit     string `bson:"unit,omitempty" json:"unit,omitempty"`
}

// Recipe is a single document in the recipes collection. Field names match
// the existing collection, so bson tags stay camelCase.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Ingredients  []Ingredient       `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	ImageURLs    []string           `bson:"imageUrls" json:"imageUrls"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	PrepTime     string             `bson:"prepTime,omitempty" json:"prepTime,omitempty"`
	CookTime     string             `bson:"cookTime,omitempty" json:"cookTime,omitempty"`
	Servings     int                `bson:"servings,omitempty" json:"servings,omitempty"`
	AuthorID     string             `bson:"authorId" json:"authorId"`
	Language     string             `bson:"language" json:"language"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecipeInput is the POST /api/recipes body: a Recipe minus the
// store-assigned and server-assigned fields.
type RecipeInput struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	ImageURLs    []string     `json:"imageUrls"`
	Tags         []string     `json:"tags,omitempty"`
	PrepTime     string       `json:"prepTime,omitempty"`
	CookTime     string       `json:"cookTime,omitempty"`
	Servings     int          `json:"servings,omitempty"`
	Language     string       `json:"language"`
	Notes        string       `json:"notes,omitempty"`
}

// MissingFields reports which of the required fields are absent. The check
// is presence-only: an ingredient list with entries passes even if an entry
// is blank; deeper validation happens client-side before submission.
func (in *RecipeInput) MissingFields() []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if len(in.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(in.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	return missing
}
