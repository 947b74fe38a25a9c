package handler

import (
	"strconv"

	"crm/internal/delivery/http/response"
	"crm/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the body into req and validates it. On failure the
// error response is already written and ok is false.
func bindAndValidate(c echo.Context, req any, bindMessage string) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, bindMessage)
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, "VALIDATION_FAILED", "input validation failed", validator.Describe(err))
	}

	return true, nil
}

// customerIDParam parses the :id path parameter. On failure the error response
// is already written and ok is false.
func customerIDParam(c echo.Context) (id int64, ok bool, err error) {
	id, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil || id <= 0 {
		return 0, false, response.BadRequest(c, "INVALID_CUSTOMER_ID", "customer id must be a positive integer", "")
	}

	return id, true, nil
}
