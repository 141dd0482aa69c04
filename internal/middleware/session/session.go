// Package sessionmw pins an anonymous session id to the browser so the cart
// has an identity before the buyer ever logs in.
package sessionmw

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const cookieName = "session_id"

func EnsureSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(cookieName)
		if err == nil && cookie.Value != "" {
			c.Set(cookieName, cookie.Value)
			return next(c)
		}

		sid := uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     cookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		c.Set(cookieName, sid)
		return next(c)
	}
}

func SessionID(c echo.Context) (string, bool) {
	sid, ok := c.Get(cookieName).(string)
	return sid, ok && sid != ""
}
