package session

import (
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const contextUserKey = "session_user_id"

// CookieAuth validates the session cookie's signature and expiry, redirecting
// browsers to the login page when the cookie is missing or invalid.
func CookieAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}

// BindUser confirms the cookie's session is still live in the store and puts
// the user ID on the request context. Runs after CookieAuth on gated routes.
func BindUser(ts *TokenService, store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := resolve(c, ts, store)
			if !ok {
				c.SetCookie(ExpiredCookie())
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(contextUserKey, userID)
			return next(c)
		}
	}
}

// OptionalUser resolves the session if a valid cookie is present but lets the
// request through either way. Used by pages rendered for both states.
func OptionalUser(ts *TokenService, store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := resolve(c, ts, store); ok {
				c.Set(contextUserKey, userID)
			}
			return next(c)
		}
	}
}

func resolve(c echo.Context, ts *TokenService, store Store) (uint, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	claims, err := ts.Parse(cookie.Value)
	if err != nil {
		return 0, false
	}
	storedUserID, err := store.Lookup(c.Request().Context(), claims.ID)
	if err != nil || storedUserID != claims.UserID {
		return 0, false
	}
	return claims.UserID, true
}

// UserID returns the authenticated user's ID for the current request.
func UserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(contextUserKey).(uint)
	return userID, ok
}

// NewCookie builds the session cookie holding a signed token.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session on the client.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
