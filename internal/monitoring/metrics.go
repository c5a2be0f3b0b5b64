package monitoring

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/attila122/hyratryggt/internal/store"
)

// Service reports runtime state: uptime, request counters, store totals and
// uploads-directory usage.
type Service struct {
	startedAt   time.Time
	users       *store.UserStore
	listings    *store.ListingStore
	leads       *store.LeadStore
	uploadsPath string
}

type Snapshot struct {
	TimestampUTC        string           `json:"timestamp_utc"`
	UptimeSeconds       int64            `json:"uptime_seconds"`
	HTTPActiveRequests  int64            `json:"http_active_requests"`
	HTTPTotalRequests   uint64           `json:"http_total_requests"`
	Goroutines          int              `json:"goroutines"`
	GoMemoryAllocBytes  uint64           `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes    uint64           `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes    uint64           `json:"go_heap_in_use_bytes"`
	GoGCCount           uint32           `json:"go_gc_count"`
	UsersTotal          int              `json:"users_total"`
	ListingsTotal       int              `json:"listings_total"`
	LeadsTotal          int              `json:"leads_total"`
	PhotoUploads        PhotoUploadStats `json:"photo_uploads"`
	UploadsSizeBytes    int64            `json:"uploads_size_bytes"`
	UploadsFilesCount   int64            `json:"uploads_files_count"`
	UploadsFSTotalBytes uint64           `json:"uploads_fs_total_bytes"`
	UploadsFSFreeBytes  uint64           `json:"uploads_fs_free_bytes"`
}

func NewService(startedAt time.Time, users *store.UserStore, listings *store.ListingStore, leads *store.LeadStore, uploadsPath string) *Service {
	return &Service{
		startedAt:   startedAt,
		users:       users,
		listings:    listings,
		leads:       leads,
		uploadsPath: uploadsPath,
	}
}

func (s *Service) Snapshot() Snapshot {
	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	activeHTTP, totalHTTP := getHTTPStats()
	uploadsDir := filepath.Clean(s.uploadsPath)
	fsTotal, fsFree := fsUsage(uploadsDir)

	return Snapshot{
		TimestampUTC:        time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:       int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests:  activeHTTP,
		HTTPTotalRequests:   totalHTTP,
		Goroutines:          runtime.NumGoroutine(),
		GoMemoryAllocBytes:  memory.Alloc,
		GoMemorySysBytes:    memory.Sys,
		GoHeapInUseBytes:    memory.HeapInuse,
		GoGCCount:           memory.NumGC,
		UsersTotal:          s.users.Count(),
		ListingsTotal:       s.listings.Count(),
		LeadsTotal:          s.leads.Count(),
		PhotoUploads:        getPhotoUploadStats(),
		UploadsSizeBytes:    dirSize(uploadsDir),
		UploadsFilesCount:   dirFileCount(uploadsDir),
		UploadsFSTotalBytes: fsTotal,
		UploadsFSFreeBytes:  fsFree,
	}
}

func (s *Service) StatusText() string {
	uptime := time.Since(s.startedAt).Round(time.Second)
	activeHTTP, totalHTTP := getHTTPStats()

	return strings.Join([]string{
		"Hyratryggt Server Status",
		fmt.Sprintf("Uptime: %s", uptime),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("Users: %d", s.users.Count()),
		fmt.Sprintf("Listings: %d", s.listings.Count()),
		fmt.Sprintf("Leads: %d", s.leads.Count()),
		fmt.Sprintf("Go goroutines: %d", runtime.NumGoroutine()),
	}, "\n")
}

func (s *Service) StorageText() string {
	uploadsDir := filepath.Clean(s.uploadsPath)
	uploadsBytes := dirSize(uploadsDir)
	uploadsFiles := dirFileCount(uploadsDir)
	uploadsTotal, uploadsFree := fsUsage(uploadsDir)
	uploadStats := getPhotoUploadStats()

	return strings.Join([]string{
		"Hyratryggt Storage",
		fmt.Sprintf("Uploads folder size (%s): %s", uploadsDir, formatBytes(uploadsBytes)),
		fmt.Sprintf("Uploads files count: %d", uploadsFiles),
		fmt.Sprintf("Photo uploads accepted: %d", uploadStats.RequestsTotal-uploadStats.FailedTotal),
		fmt.Sprintf("Photo uploads failed: %d", uploadStats.FailedTotal),
		fmt.Sprintf("Photo bytes received: %s", formatBytes(uploadStats.BytesTotal)),
		fmt.Sprintf("Uploads disk free: %s", formatBytes(int64(uploadsFree))),
		fmt.Sprintf("Uploads disk total: %s", formatBytes(int64(uploadsTotal))),
	}, "\n")
}

func dirSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

func dirFileCount(root string) int64 {
	var count int64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		count++
		return nil
	})
	return count
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
