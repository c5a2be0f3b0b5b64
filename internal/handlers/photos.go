package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/attila122/hyratryggt/internal/logger"
	"github.com/attila122/hyratryggt/internal/monitoring"
)

const photosFormField = "photos"

// PhotoIntake stores multipart listing photos on disk. Only content sniffed
// as image/* is accepted; stored names are randomized, refs are public
// "/uploads/..." paths.
type PhotoIntake struct {
	UploadsPath    string
	MaxUploadBytes int64
	MaxPhotoCount  int
}

// SavePhotos reads the "photos" form field and returns stored refs. On
// failure it writes the error response, removes any partial files and
// returns false. A request without photos succeeds with an empty slice.
func (p *PhotoIntake) SavePhotos(c *gin.Context) ([]string, bool) {
	startedAt := time.Now()
	var receivedBytes int64
	success := false
	recorded := false
	defer func() {
		if recorded {
			monitoring.RecordPhotoUpload(receivedBytes, time.Since(startedAt), success)
		}
	}()

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return []string{}, true
	}

	files := form.File[photosFormField]
	if len(files) == 0 {
		return []string{}, true
	}
	recorded = true

	if len(files) > p.MaxPhotoCount {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      fmt.Sprintf("Too many photos (max %d)", p.MaxPhotoCount),
			"max_photos": p.MaxPhotoCount,
		})
		return nil, false
	}

	if err := os.MkdirAll(p.UploadsPath, 0o755); err != nil {
		logger.Errorf("Error creating upload directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating upload directory"})
		return nil, false
	}

	refs := make([]string, 0, len(files))
	stored := make([]string, 0, len(files))
	cleanup := func() {
		for _, path := range stored {
			_ = os.Remove(path)
		}
	}

	for _, header := range files {
		if header.Size > p.MaxUploadBytes {
			cleanup()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":            "Photo is too large",
				"max_upload_bytes": p.MaxUploadBytes,
			})
			return nil, false
		}

		storedPath, size, ok := p.saveOne(c, header)
		if !ok {
			cleanup()
			return nil, false
		}
		receivedBytes += size
		stored = append(stored, storedPath)
		refs = append(refs, "/uploads/"+filepath.Base(storedPath))
	}

	success = true
	return refs, true
}

// saveOne sniffs and stores a single photo. Writes the error response and
// returns false on rejection.
func (p *PhotoIntake) saveOne(c *gin.Context, header *multipart.FileHeader) (string, int64, bool) {
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading uploaded photo"})
		return "", 0, false
	}
	defer file.Close()

	buffer := make([]byte, 512)
	bytesRead, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading uploaded photo"})
		return "", 0, false
	}
	if bytesRead == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo is empty"})
		return "", 0, false
	}

	detected := mimetype.Detect(buffer[:bytesRead]).String()
	if !strings.HasPrefix(detected, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "Only image files are allowed",
			"detected_mime": detected,
			"original_name": header.Filename,
		})
		return "", 0, false
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resetting file pointer"})
		return "", 0, false
	}

	storedName := photosFormField + "-" + uuid.NewString() + sanitizeExtension(header.Filename)
	storedPath := filepath.Join(p.UploadsPath, storedName)

	out, err := os.OpenFile(storedPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		logger.Errorf("Error creating photo file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving uploaded photo"})
		return "", 0, false
	}

	size, err := io.Copy(out, io.LimitReader(file, p.MaxUploadBytes+1))
	closeErr := out.Close()
	if err != nil || closeErr != nil {
		_ = os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving uploaded photo"})
		return "", 0, false
	}
	if size > p.MaxUploadBytes {
		_ = os.Remove(storedPath)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":            "Photo is too large",
			"max_upload_bytes": p.MaxUploadBytes,
		})
		return "", 0, false
	}

	return storedPath, size, true
}

// sanitizeExtension keeps a short, path-safe extension from the client name.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
