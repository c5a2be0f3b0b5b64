package monitoring

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var activeHTTPRequests atomic.Int64
var totalHTTPRequests atomic.Uint64

// RequestMetricsMiddleware tracks basic HTTP request counters.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		activeHTTPRequests.Add(1)
		totalHTTPRequests.Add(1)
		defer activeHTTPRequests.Add(-1)
		c.Next()
	}
}

func getHTTPStats() (active int64, total uint64) {
	return activeHTTPRequests.Load(), totalHTTPRequests.Load()
}

var photoUploadsTotal atomic.Uint64
var photoUploadsFailed atomic.Uint64
var photoUploadBytesTotal atomic.Int64
var photoUploadDurationMicros atomic.Uint64

// PhotoUploadStats summarizes listing-photo intake since process start.
type PhotoUploadStats struct {
	RequestsTotal uint64  `json:"requests_total"`
	FailedTotal   uint64  `json:"failed_total"`
	BytesTotal    int64   `json:"bytes_total"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// RecordPhotoUpload accounts one multipart photo submission.
func RecordPhotoUpload(bytes int64, duration time.Duration, success bool) {
	photoUploadsTotal.Add(1)
	if !success {
		photoUploadsFailed.Add(1)
	}
	if bytes > 0 {
		photoUploadBytesTotal.Add(bytes)
	}
	if duration > 0 {
		photoUploadDurationMicros.Add(uint64(duration / time.Microsecond))
	}
}

func getPhotoUploadStats() PhotoUploadStats {
	total := photoUploadsTotal.Load()
	totalDurationMicros := photoUploadDurationMicros.Load()
	avgDurationMS := 0.0
	if total > 0 {
		avgDurationMS = float64(totalDurationMicros) / float64(total) / 1000.0
	}

	return PhotoUploadStats{
		RequestsTotal: total,
		FailedTotal:   photoUploadsFailed.Load(),
		BytesTotal:    photoUploadBytesTotal.Load(),
		AvgDurationMS: avgDurationMS,
	}
}
