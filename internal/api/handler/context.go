package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the user identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user_id proves the
// middleware ran.
func ctxIdentity(c echo.Context) (userID string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
