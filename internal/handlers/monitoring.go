package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/attila122/hyratryggt/internal/monitoring"
)

// MonitoringHandler exposes operator endpoints guarded by a shared key.
// An empty key disables the endpoints entirely.
type MonitoringHandler struct {
	Service *monitoring.Service
	APIKey  string
}

func NewMonitoringHandler(service *monitoring.Service, apiKey string) *MonitoringHandler {
	return &MonitoringHandler{Service: service, APIKey: apiKey}
}

func (h *MonitoringHandler) checkMonitoringKey(c *gin.Context) bool {
	if h.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Monitoring API is disabled"})
		return false
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != h.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid monitoring key"})
		return false
	}
	return true
}

func (h *MonitoringHandler) MonitorStatus(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.Service.StatusText()})
}

func (h *MonitoringHandler) MonitorStorage(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.Service.StorageText()})
}

func (h *MonitoringHandler) MonitorSnapshot(c *gin.Context) {
	if !h.checkMonitoringKey(c) {
		return
	}
	c.JSON(http.StatusOK, h.Service.Snapshot())
}
