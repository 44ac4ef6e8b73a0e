package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"recipe-service/internal/models"
	"recipe-service/internal/repository"
	service "recipe-service/internal/services"
	"recipe-service/internal/utils"
)

type RecipeHandler struct {
	svc *service.RecipeService
	log *zap.SugaredLogger
}

func NewRecipeHandler(svc *service.RecipeService, log *zap.SugaredLogger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: log}
}

// Create handles POST /api/recipes. Validation at this boundary is
// presence-only; store and signer internals never leak past the details
// field.
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in models.RecipeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	rec, err := h.svc.Create(c.Context(), &in)
	if err != nil {
		var mf *service.MissingFieldsError
		if errors.As(err, &mf) {
			return utils.JSONError(c, fiber.StatusBadRequest, mf.Error())
		}
		if errors.Is(err, service.ErrUnsupportedLanguage) {
			return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
		}
		h.log.Errorw("create recipe failed", "title", in.Title, "err", err)
		return utils.JSONErrorDetails(c, fiber.StatusInternalServerError, "server error: could not save recipe", err.Error())
	}
	return utils.JSONData(c, fiber.StatusCreated, rec)
}

// List handles GET /api/recipes: every recipe, most recently updated first.
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.svc.List(c.Context())
	if err != nil {
		h.log.Errorw("list recipes failed", "err", err)
		return utils.JSONErrorDetails(c, fiber.StatusInternalServerError, "server error: could not fetch recipes", err.Error())
	}
	return utils.JSONData(c, fiber.StatusOK, recipes)
}

// Get handles GET /api/recipes/:id.
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	rec, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "recipe not found")
		}
		h.log.Errorw("get recipe failed", "id", c.Params("id"), "err", err)
		return utils.JSONErrorDetails(c, fiber.StatusInternalServerError, "server error: could not fetch recipe", err.Error())
	}
	return utils.JSONData(c, fiber.StatusOK, rec)
}
