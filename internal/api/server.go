package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Aanya18/robostaan-sitemap/internal/sitemap"
	"github.com/Aanya18/robostaan-sitemap/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	port   int
	server *http.Server
}

func NewServer(port int, store storage.Store, builder *sitemap.Builder) *Server {
	router := gin.Default()

	// Setup CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handler
	handler := NewHandler(store, builder)

	// Crawler-facing artifacts at the site root
	router.GET("/sitemap.xml", handler.Sitemap)
	router.GET("/robots.txt", handler.Robots)

	// Setup routes
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// Blogs routes
		blogs := api.Group("/blogs")
		{
			blogs.GET("", handler.ListBlogs)
			blogs.GET("/:slug", handler.GetBlog)
		}

		// Courses routes
		courses := api.Group("/courses")
		{
			courses.GET("", handler.ListCourses)
			courses.GET("/:id", handler.GetCourse)
		}

		// Events routes
		events := api.Group("/events")
		{
			events.GET("", handler.ListEvents)
		}
	}

	return &Server{
		router: router,
		port:   port,
	}
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
