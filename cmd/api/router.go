package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"multimedia-api/internal/shared/middleware"
	"multimedia-api/internal/shared/response"
	"multimedia-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = false
	// "/books/" được xử lý như "/books" thay vì redirect 307/301
	router.RedirectTrailingSlash = false

	// Global middlewares
	router.Use(
		middleware.Recovery(c.Config.IsDevelopment()),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", discoveryHandler(c))
	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupMediaRoutes(router, c)

	router.NoRoute(func(ctx *gin.Context) {
		if p := ctx.Request.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			ctx.Request.URL.Path = strings.TrimRight(p, "/")
			if ctx.Request.URL.Path == "" {
				ctx.Request.URL.Path = "/"
			}
			router.HandleContext(ctx)
			// HandleContext thay handlers của ctx: abort để chain ngoài không gọi tiếp
			ctx.Set(middleware.RedispatchedKey, true)
			ctx.Abort()
			return
		}
		response.NotFound(ctx, "route not found", fmt.Sprintf("route %s does not exist", ctx.Request.URL.RequestURI()))
	})

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors", middleware.AccessGate(c.Gate))
	c.AuthorHandler.RegisterRoutes(authors)
}

// ========================================
// MEDIA ROUTES (books, cds, dvds)
// ========================================
func setupMediaRoutes(router *gin.Engine, c *container.Container) {
	for _, h := range c.MediaHandlers {
		group := router.Group("/"+h.Kind().Resource, middleware.AccessGate(c.Gate))
		h.RegisterRoutes(group)
	}
}

// ========================================
// DISCOVERY & HEALTH
// ========================================

// discoveryHandler: tài liệu tĩnh ở "/", lộ cặp credential cố định (chỉ để tham khảo)
func discoveryHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints := gin.H{"authors": "/authors"}
		for _, h := range appCtx.MediaHandlers {
			endpoints[h.Kind().Resource] = "/" + h.Kind().Resource
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   appCtx.Config.App.Name + " - Sistema de Gerenciamento",
			"version":   appCtx.Config.App.Version,
			"endpoints": endpoints,
			"authentication": gin.H{
				"type": "Basic Authentication",
				"note": "GET requests são públicas. POST, PUT, PATCH, DELETE requerem autenticação.",
				"credentials": gin.H{
					"username": appCtx.Config.Auth.Username,
					"password": appCtx.Config.Auth.Password,
				},
			},
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, err := appCtx.HealthCheck(ctx)

		status := http.StatusOK
		overall := "ok"
		if err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		c.JSON(status, gin.H{
			"status":    overall,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
