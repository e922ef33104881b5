package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for the public content handlers
// (conventions and the blog).
type ContentHandler struct {
	conventionUc usecase.ConventionUsecase
	blogUc       usecase.BlogUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(conventionUc usecase.ConventionUsecase, blogUc usecase.BlogUsecase) *ContentHandler {
	return &ContentHandler{
		conventionUc: conventionUc,
		blogUc:       blogUc,
	}
}

// ListConventions handles the convention listing. The featured query
// parameter narrows the list to the featured set.
func (h *ContentHandler) ListConventions(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	conventions, err := h.conventionUc.ListConventions(c.Request().Context(), featuredOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conventions, "Conventions retrieved successfully")
}

// ListPosts handles the published blog listing.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.blogUc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// GetPost handles the single-post lookup by slug.
func (h *ContentHandler) GetPost(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing post slug")
	}

	post, err := h.blogUc.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}
