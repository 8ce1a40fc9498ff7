package utils

import (
	"fmt"
	"medicare-portal/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateVisitorID() string {
	return uuid.NewString()
}

// GenerateFileName builds an object name for an uploaded file, keeping the
// original extension.
func GenerateFileName(prefix, owner, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s_%s%s", prefix, owner, timestamp, uuid.NewString()[:8], ext)
}
