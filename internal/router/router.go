package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"newsboard/internal/config"
	"newsboard/internal/handler"
	"newsboard/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *session.TokenService,
	sessions session.Store,
	userHandler *handler.UserHandler,
	newsHandler *handler.NewsHandler,
	webHandler *handler.WebHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// JSON API, unauthenticated like the web client it mirrors
	api := e.Group("/api")

	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	api.GET("/news", newsHandler.ListNews)
	api.POST("/news", newsHandler.CreateNews)
	api.GET("/news/:id", newsHandler.GetNews)
	api.PUT("/news/:id", newsHandler.UpdateNews)
	api.DELETE("/news/:id", newsHandler.DeleteNews)

	// Public pages; the index resolves the session only to vary its links
	e.GET("/", webHandler.Index, session.OptionalUser(tokens, sessions))
	e.GET("/register", webHandler.RegisterForm)
	e.POST("/register", webHandler.Register)
	e.GET("/login", webHandler.LoginForm)
	e.POST("/login", webHandler.Login)
	e.GET("/logout", webHandler.Logout)

	// Pages that mutate news require a live session before any ownership check
	gated := e.Group("/news", session.CookieAuth(cfg.SessionSecret), session.BindUser(tokens, sessions))
	gated.GET("/add", webHandler.AddNewsForm)
	gated.POST("/add", webHandler.AddNews)
	gated.GET("/edit/:id", webHandler.EditNewsForm)
	gated.POST("/edit/:id", webHandler.EditNews)
	gated.GET("/delete/:id", webHandler.DeleteNews)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
