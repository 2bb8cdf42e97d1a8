package handlers

import (
	"database/sql"
	"net/http"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gerai/storefront-service/internal/infrastructure/http/response"
	"github.com/gerai/storefront-service/internal/pkg/clock"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type HealthHandler struct {
	db        *sql.DB
	redis     *redis.Client
	clk       clock.Clock
	log       *logger.Logger
	startTime time.Time
}

func NewHealthHandler(db *sql.DB, redisClient *redis.Client, clk clock.Clock, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		redis:     redisClient,
		clk:       clk,
		log:       log,
		startTime: clk.Now(),
	}
}

type MemoryMetrics struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"num_gc"`
}

type ServicesStatus struct {
	App      string `json:"app"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

type HealthData struct {
	ServicesStatus ServicesStatus `json:"services_status"`
	Uptime         string         `json:"uptime"`
	Memory         MemoryMetrics  `json:"memory"`
	Goroutines     int            `json:"goroutines"`
}

func (h *HealthHandler) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		healthy := true

		dbStatus := "ok"
		if err := h.db.PingContext(ctx); err != nil {
			h.log.Error("Database health check failed", "error", err)
			dbStatus = "unavailable"
			healthy = false
		}

		redisStatus := "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.log.Error("Redis health check failed", "error", err)
			redisStatus = "unavailable"
			healthy = false
		}

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		data := HealthData{
			ServicesStatus: ServicesStatus{
				App:      "ok",
				Database: dbStatus,
				Redis:    redisStatus,
			},
			Uptime: h.clk.Since(h.startTime).String(),
			Memory: MemoryMetrics{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				NumGC:      mem.NumGC,
			},
			Goroutines: runtime.NumGoroutine(),
		}

		statusCode := http.StatusOK
		if !healthy {
			statusCode = http.StatusServiceUnavailable
		}

		response.WriteJSON(w, statusCode, response.Success(data))
	}
}
