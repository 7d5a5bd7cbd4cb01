package context

import (
	"funnel/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for the authenticated user in echo.Context.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated user on the request.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user, if the request carried a valid token.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// GetUsername returns the authenticated username, or nil for anonymous requests.
func GetUsername(c echo.Context) *string {
	user, ok := GetUser(c)
	if !ok {
		return nil
	}
	username := user.Username

	return &username
}

// GetUserID returns the authenticated user's ID, or nil for anonymous requests.
func GetUserID(c echo.Context) *uint {
	user, ok := GetUser(c)
	if !ok {
		return nil
	}
	id := user.ID

	return &id
}
