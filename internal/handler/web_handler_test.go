package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "newsboard/internal/errors"
	"newsboard/internal/session"
)

func newGatedEcho(t *testing.T, news *MockNewsService, userID uint) (*echo.Echo, *http.Cookie) {
	t.Helper()

	e := echo.New()
	tokens := session.NewTokenService("test-secret")
	store := session.NewMemoryStore()

	sessionID, token, err := tokens.Issue(userID, time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(context.Background(), sessionID, userID, time.Hour))

	h := NewWebHandler(nil, news, time.Hour)
	gated := e.Group("/news", session.CookieAuth("test-secret"), session.BindUser(tokens, store))
	gated.POST("/edit/:id", h.EditNews)
	gated.GET("/delete/:id", h.DeleteNews)

	return e, &http.Cookie{Name: session.CookieName, Value: token}
}

func TestWebHandler_DeleteNews_NotOwnerRedirectsSilently(t *testing.T) {
	mockNews := new(MockNewsService)
	mockNews.On("DeleteNewsAsUser", mock.Anything, uint(9), uint(2)).Return(apperrors.ErrNotOwner)

	e, cookie := newGatedEcho(t, mockNews, 2)

	req := httptest.NewRequest(http.MethodGet, "/news/delete/9", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Body.String())
	mockNews.AssertExpectations(t)
}

func TestWebHandler_DeleteNews_AnonymousRedirectsToLogin(t *testing.T) {
	mockNews := new(MockNewsService)
	e, _ := newGatedEcho(t, mockNews, 2)

	// No session cookie at all: the request must bounce before any ownership check
	req := httptest.NewRequest(http.MethodGet, "/news/delete/9", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	mockNews.AssertNotCalled(t, "DeleteNewsAsUser")
}

func TestWebHandler_EditNews_StaleSessionRedirectsToLogin(t *testing.T) {
	mockNews := new(MockNewsService)

	e := echo.New()
	tokens := session.NewTokenService("test-secret")
	store := session.NewMemoryStore()

	// Signed cookie, but no server-side session behind it
	_, token, err := tokens.Issue(2, time.Hour)
	assert.NoError(t, err)

	h := NewWebHandler(nil, mockNews, time.Hour)
	gated := e.Group("/news", session.CookieAuth("test-secret"), session.BindUser(tokens, store))
	gated.POST("/edit/:id", h.EditNews)

	req := httptest.NewRequest(http.MethodPost, "/news/edit/9", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	mockNews.AssertNotCalled(t, "UpdateNewsAsUser")
}

func TestWebHandler_DeleteNews_MissingRowIs404(t *testing.T) {
	mockNews := new(MockNewsService)
	mockNews.On("DeleteNewsAsUser", mock.Anything, uint(9), uint(2)).Return(apperrors.ErrNewsNotFound)

	e, cookie := newGatedEcho(t, mockNews, 2)

	req := httptest.NewRequest(http.MethodGet, "/news/delete/9", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
