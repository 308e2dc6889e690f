package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"seismic-catalog/internal/auth"
	domain "seismic-catalog/internal/domain/requisition"
	ucRequisition "seismic-catalog/internal/usecase/requisition"
)

type RequisitionHandler struct {
	uc *ucRequisition.Usecase
}

func NewRequisitionHandler(uc *ucRequisition.Usecase) *RequisitionHandler {
	return &RequisitionHandler{uc: uc}
}

type decideReq struct {
	Comments *string `json:"comments" validate:"omitempty,max=2000"`
}

func principal(c echo.Context) (auth.Principal, bool) {
	return auth.PrincipalFrom(c.Request().Context())
}

func requisitionID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *RequisitionHandler) List(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}
	out, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return writeRequisitionError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequisitionHandler) Get(c echo.Context) error {
	id, ok := requisitionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid requisition id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeRequisitionError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequisitionHandler) Create(c echo.Context) error {
	p, ok := principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
	}
	var in ucRequisition.CreateInput
	if err := bindJSON(c, &in); err != nil {
		return writeBindError(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), in, p.ID)
	if err != nil {
		return writeRequisitionError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Decide returns the handler for one workflow action.
func (h *RequisitionHandler) Decide(action domain.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := principal(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing principal"})
		}
		id, ok := requisitionID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid requisition id"})
		}
		var req decideReq
		if err := bindJSON(c, &req); err != nil {
			return writeBindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}

		dto, err := h.uc.Decide(c.Request().Context(), ucRequisition.DecideInput{
			ID:       id,
			Action:   action,
			Actor:    p,
			Comments: req.Comments,
		})
		if err != nil {
			return writeRequisitionError(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
