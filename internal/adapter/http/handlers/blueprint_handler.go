package handlers

import (
	"errors"
	"net/http"

	request "contract_tracker/internal/adapter/http/dto/request"
	response "contract_tracker/internal/adapter/http/dto/response"
	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase"
	"contract_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBlueprintPayload = pkg.NewDomainErrorSimple("INVALID_BLUEPRINT_INPUT", "Invalid blueprint payload", http.StatusBadRequest)
	errBlueprintNotFound       = pkg.NewDomainErrorSimple("BLUEPRINT_NOT_FOUND", "Blueprint not found", http.StatusNotFound)
)

// BlueprintHandler exposes the blueprint list and the blueprint editor.
//
// Create and update run one editor session per request: fields sent with an
// id are kept, fields without one are added after them with a fresh id.

type BlueprintHandler struct {
	store usecase.IBlueprintStore
}

func NewBlueprintHandler(store usecase.IBlueprintStore) *BlueprintHandler {
	return &BlueprintHandler{store: store}
}

// ListBlueprints godoc
// @Summary      List blueprints
// @Tags         blueprints
// @Produce      json
// @Success      200  {object}  response.BlueprintListResponse
// @Router       /blueprints [get]
func (h *BlueprintHandler) ListBlueprints(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBlueprints(h.store.List()))
}

// GetBlueprint godoc
// @Summary      Get a blueprint
// @Tags         blueprints
// @Produce      json
// @Param        id   path      string  true  "Blueprint id"
// @Success      200  {object}  response.BlueprintResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /blueprints/{id} [get]
func (h *BlueprintHandler) GetBlueprint(c *gin.Context) {
	bp, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(errBlueprintNotFound.HTTPStatus, errBlueprintNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBlueprint(bp))
}

// CreateBlueprint godoc
// @Summary      Create a blueprint
// @Tags         blueprints
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BlueprintRequest  true  "Blueprint"
// @Success      201      {object}  response.BlueprintResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /blueprints [post]
func (h *BlueprintHandler) CreateBlueprint(c *gin.Context) {
	var payload request.BlueprintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBlueprintPayload.HTTPStatus, errInvalidBlueprintPayload.ToHTTPError())
		return
	}

	h.save(c, usecase.NewBlueprintEditor(), entities.Blueprint{}, payload, http.StatusCreated)
}

// UpdateBlueprint godoc
// @Summary      Update a blueprint
// @Description  Replaces name, description and fields. The id and creation date never change.
// @Tags         blueprints
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Blueprint id"
// @Param        payload  body      request.BlueprintRequest  true  "Blueprint"
// @Success      200      {object}  response.BlueprintResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /blueprints/{id} [put]
func (h *BlueprintHandler) UpdateBlueprint(c *gin.Context) {
	var payload request.BlueprintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBlueprintPayload.HTTPStatus, errInvalidBlueprintPayload.ToHTTPError())
		return
	}

	bp, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(errBlueprintNotFound.HTTPStatus, errBlueprintNotFound.ToHTTPError())
		return
	}
	h.save(c, usecase.EditBlueprint(bp), bp, payload, http.StatusOK)
}

// DeleteBlueprint godoc
// @Summary      Delete a blueprint
// @Description  Contracts generated from it keep their copied fields.
// @Tags         blueprints
// @Param        id       path  string  true  "Blueprint id"
// @Param        confirm  query bool    true  "Must be true"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      428  {object}  pkg.HTTPError
// @Router       /blueprints/{id} [delete]
func (h *BlueprintHandler) DeleteBlueprint(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id := c.Param("id")
	if _, ok := h.store.Get(id); !ok {
		c.JSON(errBlueprintNotFound.HTTPStatus, errBlueprintNotFound.ToHTTPError())
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		appErr := mapBlueprintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlueprintHandler) save(c *gin.Context, editor *usecase.BlueprintEditor, stored entities.Blueprint, payload request.BlueprintRequest, status int) {
	if err := applyBlueprintRequest(editor, stored, payload); err != nil {
		appErr := mapBlueprintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	id, err := editor.Save(c.Request.Context(), h.store)
	if err != nil {
		appErr := mapBlueprintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, ok := h.store.Get(id)
	if !ok {
		saved = editor.Draft()
		saved.ID = id
	}
	c.JSON(status, response.FromBlueprint(saved))
}

// applyBlueprintRequest replays payload into editor. A kept field that omits
// its label or position inherits it from the stored blueprint.
func applyBlueprintRequest(editor *usecase.BlueprintEditor, stored entities.Blueprint, payload request.BlueprintRequest) error {
	editor.SetName(payload.Name)
	editor.SetDescription(payload.Description)
	editor.ClearFields()

	var added []request.FieldRequest
	for i, f := range payload.Fields {
		if f.ResolveID() == "" {
			added = append(added, f)
			continue
		}
		field := entities.Field{
			ID:       f.ResolveID(),
			Type:     f.ResolveType(),
			Label:    f.Label,
			Position: entities.Position{X: 50, Y: 50 + 80*float64(i)},
			Required: f.Required,
		}
		if prev, ok := stored.FieldByID(field.ID); ok {
			field.Position = prev.Position
			if field.Label == "" {
				field.Label = prev.Label
			}
		}
		if p := f.ResolvePosition(); p != nil {
			field.Position = *p
		}
		if err := editor.KeepField(field); err != nil {
			return err
		}
	}

	for _, f := range added {
		field, err := editor.AddField(f.ResolveType())
		if err != nil {
			return err
		}
		patch := usecase.FieldPatch{Position: f.ResolvePosition(), Required: &f.Required}
		if f.Label != "" {
			label := f.Label
			patch.Label = &label
		}
		if _, err := editor.UpdateField(field.ID, patch); err != nil {
			return err
		}
	}
	return nil
}

func mapBlueprintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBlueprintNameRequired),
		errors.Is(err, usecase.ErrInvalidFieldType),
		errors.Is(err, usecase.ErrDuplicateFieldID),
		errors.Is(err, usecase.ErrFieldNotFound):
		return pkg.NewDomainErrorSimple("INVALID_BLUEPRINT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBlueprintNotFound):
		return errBlueprintNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
