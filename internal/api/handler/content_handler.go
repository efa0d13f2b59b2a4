package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/admin-dashboard/internal/api/metrics"
	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

// ContentHandler handles content CRUD routes.
type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type createPostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	// Both fields optional: omitted values keep the stored ones.
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type postListItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

func newPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Body,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// List returns all posts with author names resolved.
//
// @Summary      List content
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postListItemResponse
// @Failure      401  {object}  map[string]string
// @Router       /content [get]
func (h *ContentHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	views, err := h.contentService.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := make([]postListItemResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, postListItemResponse{
			ID:        v.ID,
			Title:     v.Title,
			Content:   v.Body,
			Author:    v.Author,
			CreatedAt: v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a new post owned by the caller.
//
// @Summary      Create a post
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post contents"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.contentService.Create(c.Request().Context(), actor, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.PostsWrittenTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, newPostResponse(post))
}

// Update edits a post. Omitted fields keep their stored values.
//
// @Summary      Update a post
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /content/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.contentService.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdatePostInput{
		Title: req.Title,
		Body:  req.Content,
	})
	if err != nil {
		return err
	}

	metrics.PostsWrittenTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, newPostResponse(post))
}

// Delete removes a post.
//
// @Summary      Delete a post
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.contentService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.PostsWrittenTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Post deleted"})
}
