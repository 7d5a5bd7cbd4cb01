package handler

import (
	"net/http"
	"strconv"

	domainerrors "funnel/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func errInvalidID(param string) error {
	return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid "+param, "")
}

var errInvalidInput = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Malformed request body", "")

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errInvalidID(name)
	}

	return id, nil
}

// uintParam parses a positive integer path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, errInvalidID(name)
	}

	return uint(id), nil
}

// bindAndValidate decodes the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidInput.WithDetails(bindErrorDetail(err))
	}

	return c.Validate(req)
}

func bindErrorDetail(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}

	return "request body could not be decoded"
}
