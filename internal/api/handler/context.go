package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Claims carries the authenticated actor extracted by the Auth middleware.
type Claims struct {
	UserID   string
	UserName string
	Role     string
}

// ctxClaims extracts the auth claims injected by the Auth middleware.
// user_id and role must both be present: presence proves the middleware ran
// and the token carries a usable identity.
func ctxClaims(c echo.Context) (Claims, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userName, _ := c.Get("user_name").(string)
	return Claims{UserID: userID, UserName: userName, Role: role}, nil
}
