package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"recipe-service/internal/models"
	"recipe-service/internal/repository"
	service "recipe-service/internal/services"
	"recipe-service/internal/web"
)

type fakeStore struct {
	recipes []models.Recipe
}

func (f *fakeStore) Insert(_ context.Context, rec *models.Recipe) error {
	rec.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	f.recipes = append(f.recipes, *rec)
	return nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]models.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID.Hex() == id {
			return &f.recipes[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func newPagesApp(t *testing.T, store *fakeStore) *fiber.App {
	t.Helper()
	pages, err := web.NewPages(service.NewRecipeService(store), zap.NewNop().Sugar(), "https://bucket.example.com")
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	app := fiber.New()
	app.Get("/", pages.Root)
	app.Get("/:locale", pages.Home)
	app.Get("/:locale/add-recipe", pages.AddRecipe)
	app.Get("/:locale/recipes/:id", pages.Recipe)
	return app
}

func seedRecipe(t *testing.T, store *fakeStore, title string) models.Recipe {
	t.Helper()
	rec := models.Recipe{
		Title:        title,
		Description:  "so good",
		Ingredients:  []models.Ingredient{{Name: "Flour", Quantity: "2", Unit: "cups"}},
		Instructions: []string{"Mix", "Bake"},
		ImageURLs:    []string{},
		Language:     "en",
	}
	if err := store.Insert(context.Background(), &rec); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return rec
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func TestUnknownLocaleIs404(t *testing.T) {
	app := newPagesApp(t, &fakeStore{})

	for _, path := range []string{"/fr", "/de/add-recipe", "/en-US"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestHomeRendersRecipesPerLocale(t *testing.T) {
	store := &fakeStore{}
	seedRecipe(t, store, "Abuela's Flan")
	app := newPagesApp(t, store)

	en, err := app.Test(httptest.NewRequest(http.MethodGet, "/en", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if en.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", en.StatusCode)
	}
	enBody := body(t, en)
	if !strings.Contains(enBody, "Abuela&#39;s Flan") && !strings.Contains(enBody, "Abuela's Flan") {
		t.Error("en home does not list the recipe")
	}
	if !strings.Contains(enBody, "Our Family Recipes") {
		t.Error("en home missing translated heading")
	}

	es, err := app.Test(httptest.NewRequest(http.MethodGet, "/es", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	esBody := body(t, es)
	if !strings.Contains(esBody, "Nuestras recetas familiares") {
		t.Error("es home missing translated heading")
	}
}

func TestRecipeDetailPage(t *testing.T) {
	store := &fakeStore{}
	rec := seedRecipe(t, store, "Sunday Bread")
	app := newPagesApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/en/recipes/"+rec.ID.Hex(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	b := body(t, resp)
	for _, want := range []string{"Sunday Bread", "Flour", "Mix", "Ingredients"} {
		if !strings.Contains(b, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestRecipeDetailNotFound(t *testing.T) {
	app := newPagesApp(t, &fakeStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/en/recipes/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAddRecipePage(t *testing.T) {
	app := newPagesApp(t, &fakeStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/es/add-recipe", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	b := body(t, resp)
	if !strings.Contains(b, "/api/s3/upload") || !strings.Contains(b, "/api/recipes") {
		t.Error("add-recipe page missing the submission endpoints")
	}
}

func TestRootRedirectsToDefaultLocale(t *testing.T) {
	app := newPagesApp(t, &fakeStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); !strings.HasPrefix(loc, "/en") {
		t.Errorf("redirect location = %q, want /en prefix", loc)
	}
}
