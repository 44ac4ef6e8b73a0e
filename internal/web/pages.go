// Package web serves the localized HTML pages. Every page lives under a
// locale prefix; an unrecognized prefix is a 404, never a fallback locale.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"recipe-service/internal/i18n"
	"recipe-service/internal/models"
	"recipe-service/internal/repository"
	service "recipe-service/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

type Pages struct {
	svc           *service.RecipeService
	log           *zap.SugaredLogger
	tpl           *template.Template
	publicBaseURL string
}

// NewPages parses the embedded templates. publicBaseURL is where uploaded
// objects end up publicly readable; the add-recipe page builds final image
// URLs from it.
func NewPages(svc *service.RecipeService, log *zap.SugaredLogger, publicBaseURL string) (*Pages, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{svc: svc, log: log, tpl: tpl, publicBaseURL: publicBaseURL}, nil
}

type pageData struct {
	B             *i18n.Bundle
	Recipes       []models.Recipe
	Recipe        *models.Recipe
	PublicBaseURL string
}

func (p *Pages) render(c *fiber.Ctx, name string, data pageData) error {
	var buf bytes.Buffer
	if err := p.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		p.log.Errorw("render failed", "template", name, "err", err)
		return fiber.ErrInternalServerError
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (p *Pages) bundle(c *fiber.Ctx) (*i18n.Bundle, error) {
	b, err := i18n.Load(c.Params("locale"))
	if err != nil {
		return nil, fiber.ErrNotFound
	}
	return b, nil
}

// Root redirects the bare path to the default locale.
func (p *Pages) Root(c *fiber.Ctx) error {
	return c.Redirect("/"+i18n.Locales[0]+"/", fiber.StatusFound)
}

// Home renders the recipe list. Search filters the full fetched set in the
// browser; the server does no filtering.
func (p *Pages) Home(c *fiber.Ctx) error {
	b, err := p.bundle(c)
	if err != nil {
		return err
	}
	recipes, err := p.svc.List(c.Context())
	if err != nil {
		p.log.Errorw("home: list recipes failed", "err", err)
		return fiber.ErrInternalServerError
	}
	return p.render(c, "home.html", pageData{B: b, Recipes: recipes})
}

func (p *Pages) Recipe(c *fiber.Ctx) error {
	b, err := p.bundle(c)
	if err != nil {
		return err
	}
	rec, err := p.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		p.log.Errorw("recipe page failed", "id", c.Params("id"), "err", err)
		return fiber.ErrInternalServerError
	}
	return p.render(c, "recipe.html", pageData{B: b, Recipe: rec})
}

func (p *Pages) AddRecipe(c *fiber.Ctx) error {
	b, err := p.bundle(c)
	if err != nil {
		return err
	}
	return p.render(c, "add_recipe.html", pageData{B: b, PublicBaseURL: p.publicBaseURL})
}
