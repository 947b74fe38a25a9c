package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyOperatorID is the key for the authenticated operator's id in echo.Context.
	KeyOperatorID ContextKey = "operator_id"

	// KeyRoles is the key for the authenticated operator's role claims in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetOperator stores the authenticated operator on the request.
func SetOperator(c echo.Context, operatorID uuid.UUID, roles []string) {
	c.Set(string(KeyOperatorID), operatorID)
	c.Set(string(KeyRoles), roles)
}

// GetOperatorID returns the authenticated operator, if any.
func GetOperatorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyOperatorID)).(uuid.UUID)

	return id, ok
}

// GetRoles returns the role claims of the authenticated operator.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}
