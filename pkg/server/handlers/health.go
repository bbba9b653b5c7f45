package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candigraph/candigraph/pkg/driver"
)

// Build information - can be set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler handles health check requests
type HealthHandler struct {
	pinger driver.Pinger
}

// NewHealthHandler creates a new health handler. The pinger may be nil when
// no store is wired, in which case readiness reports only process health.
func NewHealthHandler(pinger driver.Pinger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
	}
}

// HealthCheck handles GET /health - basic liveness check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "candigraph",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// LivenessCheck handles GET /live - Kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

// ReadinessCheck handles GET /ready - verifies the graph store is reachable
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{}
	status := http.StatusOK
	overall := "ready"

	if h.pinger != nil {
		start := time.Now()
		if err := h.pinger.Ping(ctx); err != nil {
			checks["database"] = gin.H{
				"status":   "unhealthy",
				"error":    err.Error(),
				"duration": time.Since(start).String(),
			}
			status = http.StatusServiceUnavailable
			overall = "not ready"
		} else {
			checks["database"] = gin.H{
				"status":   "healthy",
				"duration": time.Since(start).String(),
			}
		}
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"service":   "candigraph",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// DetailedHealthCheck handles GET /health/detailed - includes build info
func (h *HealthHandler) DetailedHealthCheck(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "candigraph",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"build": gin.H{
			"version":    Version,
			"git_commit": GitCommit,
			"build_time": BuildTime,
			"go_version": GoVersion,
		},
		"runtime": gin.H{
			"goroutines":  runtime.NumGoroutine(),
			"alloc_bytes": memStats.Alloc,
			"sys_bytes":   memStats.Sys,
			"num_gc":      memStats.NumGC,
			"last_gc":     time.Unix(0, int64(memStats.LastGC)).UTC().Format(time.RFC3339),
		},
	})
}
