package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	domain "seismic-catalog/internal/domain/requisition"
	domainUser "seismic-catalog/internal/domain/user"
)

// writeRequisitionError maps requisition failures to HTTP responses.
// Storage details never reach the client.
func writeRequisitionError(c echo.Context, err error) error {
	var (
		ve *domain.ValidationError
		te *domain.TransitionError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Reason}},
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "requisition not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized to perform this action"})
	case errors.As(err, &te):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: te.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func writeUserError(c echo.Context, log *logrus.Entry, err error) error {
	switch {
	case errors.Is(err, domainUser.ErrDuplicateCPF):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "User with this CPF No already exists."})
	case errors.Is(err, domainUser.ErrInvalidUserType):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "user_type", Message: "must be one of " + roleList()}},
		})
	case errors.Is(err, domainUser.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect ID or password."})
	default:
		log.WithContext(c.Request().Context()).WithError(err).Error("user request failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
