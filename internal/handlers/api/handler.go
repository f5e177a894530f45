package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-item-catalog/internal"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog"
)

// maxBodyBytes bounds a homebrew item upload
const maxBodyBytes = 1 << 20

// Handler serves the catalog browse API
type Handler struct {
	catalog     catalog.Service
	corsOrigins []string
	limiter     redis.UniversalClient
	rateLimit   int
	rateWindow  time.Duration
}

type HandlerConfig struct {
	CatalogService catalog.Service
	// CORSOrigins enables cross-origin requests from these origins; "*" allows any
	CORSOrigins []string
	// RateLimitClient backs the homebrew write limiter; nil disables it
	RateLimitClient    redis.UniversalClient
	HomebrewRateLimit  int
	HomebrewRateWindow time.Duration
}

func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("HandlerConfig")
	}
	if cfg.CatalogService == nil {
		return nil, internal.NewMissingParamError("CatalogService")
	}
	return &Handler{
		catalog:     cfg.CatalogService,
		corsOrigins: cfg.CORSOrigins,
		limiter:     cfg.RateLimitClient,
		rateLimit:   cfg.HomebrewRateLimit,
		rateWindow:  cfg.HomebrewRateWindow,
	}, nil
}

// Routes returns the API router including /metrics and /health
func (h *Handler) Routes() http.Handler {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger(), gin.Recovery())

	if len(h.corsOrigins) > 0 {
		router.Use(cors.New(corsConfig(h.corsOrigins)))
	}

	api := router.Group("/api")
	{
		api.GET("/facets", h.GetFacets)
		api.GET("/items", h.GetItems)
		api.GET("/picker", h.GetPicker)
		api.POST("/reload", h.Reload)

		homebrew := api.Group("/homebrew")
		if h.limiter != nil && h.rateLimit > 0 {
			homebrew.Use(RateLimiter(h.limiter, h.rateLimit, h.rateWindow))
		}
		homebrew.POST("/items", h.CreateHomebrewItem)
		homebrew.DELETE("/items/:id", h.DeleteHomebrewItem)
	}

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

func (h *Handler) GetFacets(c *gin.Context) {
	out, err := h.catalog.Facets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetItems(c *gin.Context) {
	var req BrowseRequest
	if err := decodeQuery(&req, c.Request.URL.Query()); err != nil {
		writeError(c, err)
		return
	}
	sel, err := parseSelection(req.Include, req.Exclude, req.Range)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.catalog.Browse(c.Request.Context(), &catalog.BrowseInput{
		Selection: sel,
		Sort:      req.sortOptions(),
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetPicker(c *gin.Context) {
	var req PickRequest
	if err := decodeQuery(&req, c.Request.URL.Query()); err != nil {
		writeError(c, err)
		return
	}
	sel, err := parseSelection(req.Include, req.Exclude, req.Range)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.catalog.Pick(c.Request.Context(), &catalog.PickInput{
		Radio:     req.Radio,
		Selection: sel,
		Sort:      req.sortOptions(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateHomebrewItem(c *gin.Context) {
	var it item.Item
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err := dec.Decode(&it); err != nil {
		writeError(c, caterr.InvalidArgumentf("invalid item body: %v", err))
		return
	}

	created, err := h.catalog.AddHomebrew(c.Request.Context(), &it)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) DeleteHomebrewItem(c *gin.Context) {
	if err := h.catalog.RemoveHomebrew(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Reload(c *gin.Context) {
	out, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded":     out.Loaded,
		"skipped":    out.Skipped,
		"registered": out.Stats.Registered,
		"excluded":   out.Stats.Excluded,
		"durationMs": out.Duration.Milliseconds(),
	})
}

type errorResponse struct {
	Error string         `json:"error"`
	Code  caterr.Code    `json:"code"`
	Meta  map[string]any `json:"meta,omitempty"`
}

func statusFor(code caterr.Code) int {
	switch code {
	case caterr.CodeInvalidArgument:
		return http.StatusBadRequest
	case caterr.CodeNotFound:
		return http.StatusNotFound
	case caterr.CodeAlreadyExists:
		return http.StatusConflict
	case caterr.CodeDataIntegrity:
		return http.StatusUnprocessableEntity
	case caterr.CodeRateLimited:
		return http.StatusTooManyRequests
	case caterr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	code := caterr.GetCode(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		log.Printf("API error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Error: err.Error(),
		Code:  code,
		Meta:  caterr.GetMeta(err),
	})
}
