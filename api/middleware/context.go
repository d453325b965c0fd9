package middleware

import (
	"enrollix/internal/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextUserKey = "auth_user"

func SetAuthContext(c echo.Context, user *entity.User) {
	c.Set(contextUserKey, user)
}

func CurrentUser(c echo.Context) (*entity.User, bool) {
	value := c.Get(contextUserKey)
	user, ok := value.(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
