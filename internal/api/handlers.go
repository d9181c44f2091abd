package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Aanya18/robostaan-sitemap/internal/sitemap"
	"github.com/Aanya18/robostaan-sitemap/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	store   storage.Store
	builder *sitemap.Builder
	fetcher *sitemap.Fetcher
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PaginationResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int         `json:"total_count,omitempty"`
}

func NewHandler(store storage.Store, builder *sitemap.Builder) *Handler {
	return &Handler{
		store:   store,
		builder: builder,
		fetcher: sitemap.NewFetcher(store),
	}
}

// Sitemap assembles and serves sitemap.xml. A failing content fetch
// degrades to the static pages rather than failing the request.
func (h *Handler) Sitemap(c *gin.Context) {
	result := h.fetcher.Fetch(c.Request.Context())
	if result.Partial {
		log.Printf("Sitemap generated with partial content: %v", result.Reasons)
	}

	doc := h.builder.BuildDocument(result)
	xmlStr, err := h.builder.Sitemap(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build sitemap"})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xmlStr))
}

func (h *Handler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.builder.Robots()))
}

func (h *Handler) ListBlogs(c *gin.Context) {
	blogs, err := h.store.ListBlogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *Handler) GetBlog(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Blog slug is required"})
		return
	}

	blog, err := h.store.GetBlogBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blog"})
		return
	}

	if blog == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.store.ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *Handler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid course ID"})
		return
	}

	course, err := h.store.GetCourse(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch course"})
		return
	}

	if course == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Course not found"})
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *Handler) ListEvents(c *gin.Context) {
	page, limit := getPaginationParams(c)
	offset := (page - 1) * limit

	events, err := h.store.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, PaginationResponse{
		Data:  events,
		Page:  page,
		Limit: limit,
	})
}

// Utility functions
func getPaginationParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return page, limit
}
