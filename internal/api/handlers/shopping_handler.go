package handlers

import (
	"errors"

	"dispensa-backend/domain"
	"dispensa-backend/internal/api/presenters"
	"dispensa-backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		EnqueueMissing(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		ToggleEntry(c *fiber.Ctx) error
		PurchaseEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		ClearCompleted(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	entries, err := h.shoppingService.GetShoppingList(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"entries": entries}, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddEntry(c *fiber.Ctx) error {
	req := new(domain.AddShoppingEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	entries, err := h.shoppingService.AddEntry(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"entries": entries}, fiber.StatusCreated, domain.MessageSuccessAddShoppingEntry)
}

func (h *shoppingHandler) EnqueueMissing(c *fiber.Ctx) error {
	req := new(domain.EnqueueMissingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEnqueueMissing, err)
	}

	entries, err := h.shoppingService.EnqueueMissing(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedEnqueueMissing, err)
		}
		if errors.Is(err, domain.ErrNothingMissing) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedEnqueueMissing, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEnqueueMissing, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"entries": entries}, fiber.StatusCreated, domain.MessageSuccessEnqueueMissing)
}

func (h *shoppingHandler) UpdateEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")
	req := new(domain.UpdateShoppingEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEntry, err)
	}

	if err := h.shoppingService.UpdateEntry(c.Context(), entryID, *req); err != nil {
		if errors.Is(err, domain.ErrShoppingEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateEntry)
}

func (h *shoppingHandler) ToggleEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	checked, err := h.shoppingService.ToggleEntry(c.Context(), entryID)
	if err != nil {
		if errors.Is(err, domain.ErrShoppingEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleEntry, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"checked": checked}, fiber.StatusOK, domain.MessageSuccessToggleEntry)
}

func (h *shoppingHandler) PurchaseEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")
	req := new(domain.PurchaseEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchaseEntry, err)
	}

	item, err := h.shoppingService.PurchaseEntry(c.Context(), entryID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrShoppingEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPurchaseEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchaseEntry, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessPurchaseEntry)
}

func (h *shoppingHandler) DeleteEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	if err := h.shoppingService.DeleteEntry(c.Context(), entryID); err != nil {
		if errors.Is(err, domain.ErrShoppingEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *shoppingHandler) ClearCompleted(c *fiber.Ctx) error {
	cleared, err := h.shoppingService.ClearCompleted(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearCompleted, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"cleared": cleared}, fiber.StatusOK, domain.MessageSuccessClearCompleted)
}
