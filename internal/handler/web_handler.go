package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "newsboard/internal/errors"
	"newsboard/internal/model"
	"newsboard/internal/service"
	"newsboard/internal/session"
)

// WebHandler serves the server-rendered pages.
type WebHandler struct {
	auth       service.AuthService
	news       service.NewsService
	sessionTTL time.Duration
}

// NewWebHandler creates the web UI handler layer.
func NewWebHandler(auth service.AuthService, news service.NewsService, sessionTTL time.Duration) *WebHandler {
	return &WebHandler{auth: auth, news: news, sessionTTL: sessionTTL}
}

type indexData struct {
	LoggedIn bool
	News     []model.News
}

type formData struct {
	Error string
}

type editData struct {
	News *model.News
}

// Index lists all posts with their authors.
func (h *WebHandler) Index(c echo.Context) error {
	list, err := h.news.ListNewsWithAuthors(c.Request().Context())
	if err != nil {
		return err
	}
	_, loggedIn := session.UserID(c)
	return c.Render(http.StatusOK, "index.html", indexData{LoggedIn: loggedIn, News: list})
}

// RegisterForm renders the registration page.
func (h *WebHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", formData{})
}

// Register creates an account from the form and redirects to the login page.
// A taken email re-renders the form.
func (h *WebHandler) Register(c echo.Context) error {
	_, err := h.auth.Register(
		c.Request().Context(),
		c.FormValue("first_name"),
		c.FormValue("last_name"),
		c.FormValue("email"),
		c.FormValue("password"),
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return c.Render(http.StatusOK, "register.html", formData{Error: "Email already registered"})
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login page.
func (h *WebHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", formData{})
}

// Login establishes a session. Bad credentials re-render the form without
// saying which field was wrong.
func (h *WebHandler) Login(c echo.Context) error {
	token, _, err := h.auth.Login(c.Request().Context(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", formData{})
		}
		return err
	}
	c.SetCookie(session.NewCookie(token, h.sessionTTL))
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and redirects to the login page.
func (h *WebHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(session.ExpiredCookie())
	return c.Redirect(http.StatusFound, "/login")
}

// AddNewsForm renders the new-post page.
func (h *WebHandler) AddNewsForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_news.html", formData{})
}

// AddNews creates a post owned by the session user.
func (h *WebHandler) AddNews(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	_, err := h.news.CreateNews(c.Request().Context(), c.FormValue("title"), c.FormValue("content"), userID)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// EditNewsForm renders the edit page for a post the session user owns.
// Non-owners are silently sent back to the index.
func (h *WebHandler) EditNewsForm(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	news, err := h.news.GetNews(c.Request().Context(), id)
	if err != nil {
		return h.webError(c, err)
	}
	if news.UserID != userID {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "edit_news.html", editData{News: news})
}

// EditNews overwrites a post's title and content if the session user owns it.
func (h *WebHandler) EditNews(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	title := c.FormValue("title")
	content := c.FormValue("content")
	update := service.NewsUpdate{Title: &title, Content: &content}
	if _, err := h.news.UpdateNewsAsUser(c.Request().Context(), id, userID, update); err != nil {
		return h.webError(c, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// DeleteNews removes a post if the session user owns it.
func (h *WebHandler) DeleteNews(c echo.Context) error {
	userID, ok := session.UserID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.news.DeleteNewsAsUser(c.Request().Context(), id, userID); err != nil {
		return h.webError(c, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// webError translates domain errors for browser responses: missing rows 404,
// ownership failures redirect home with no message.
func (h *WebHandler) webError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNewsNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrNotOwner):
		return c.Redirect(http.StatusFound, "/")
	default:
		return err
	}
}
