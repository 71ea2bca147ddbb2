package handlers

import (
	"net/http"
	"time"

	"github.com/Bessima/orderflow/internal/handlers/schemas"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check отдаёт статический liveness-ответ, без проверки зависимостей.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemas.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services: map[string]string{
			"database": "connected",
			"s3":       "mock",
			"sns":      "mock",
		},
	})
}
