package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-service/internal/i18n"
	"recipe-service/internal/models"
)

// TODO: replace with the authenticated user's id once a login flow exists.
const placeholderAuthorID = "family-member"

var ErrUnsupportedLanguage = errors.New("unsupported language")

// MissingFieldsError reports which required fields were absent from a
// submission.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// RecipeStore is the slice of the repository the service needs.
type RecipeStore interface {
	Insert(ctx context.Context, rec *models.Recipe) error
	ListAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
}

type RecipeService struct {
	store RecipeStore
}

func NewRecipeService(store RecipeStore) *RecipeService {
	return &RecipeService{store: store}
}

// Create validates the input at presence level, stamps the placeholder
// author id, and inserts the document. The store assigns id and timestamps.
func (s *RecipeService) Create(ctx context.Context, in *models.RecipeInput) (*models.Recipe, error) {
	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	if !i18n.IsSupported(in.Language) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, in.Language)
	}
	rec := &models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		ImageURLs:    in.ImageURLs,
		Tags:         in.Tags,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
		Servings:     in.Servings,
		AuthorID:     placeholderAuthorID,
		Language:     in.Language,
		Notes:        in.Notes,
	}
	if rec.ImageURLs == nil {
		rec.ImageURLs = []string{}
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.store.ListAll(ctx)
}

func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	return s.store.GetByID(ctx, id)
}
