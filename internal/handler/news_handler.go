package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"newsboard/internal/service"
)

// NewsHandler bundles the JSON API handlers for news posts.
type NewsHandler struct {
	news service.NewsService
}

// NewNewsHandler creates a handler layer.
func NewNewsHandler(news service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// CreateNewsRequest represents a news creation request.
type CreateNewsRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  uint   `json:"user_id" validate:"required"`
}

// UpdateNewsRequest represents a partial news update. Absent fields keep
// their stored values.
type UpdateNewsRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListNews godoc
// @Summary List news posts
// @Tags news
// @Produce json
// @Success 200 {array} model.News
// @Router /news [get]
func (h *NewsHandler) ListNews(c echo.Context) error {
	list, err := h.news.ListNews(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateNews godoc
// @Summary Create news post
// @Tags news
// @Accept json
// @Produce json
// @Param request body CreateNewsRequest true "News payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var req CreateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.news.CreateNews(c.Request().Context(), req.Title, req.Content, req.UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "News created"})
}

// GetNews godoc
// @Summary Get news post by id
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} model.News
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	news, err := h.news.GetNews(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, news)
}

// UpdateNews godoc
// @Summary Update news fields
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param request body UpdateNewsRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /news/{id} [put]
func (h *NewsHandler) UpdateNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := service.NewsUpdate{
		Title:   req.Title,
		Content: req.Content,
	}
	if _, err := h.news.UpdateNews(c.Request().Context(), id, update); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "News updated"})
}

// DeleteNews godoc
// @Summary Delete news post
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /news/{id} [delete]
func (h *NewsHandler) DeleteNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.news.DeleteNews(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "News deleted"})
}
