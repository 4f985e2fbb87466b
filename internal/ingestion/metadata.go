package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/resume-checker/internal/types"
)

// now is swapped in tests.
var now = time.Now

func newDocument(path string, format Format) *types.Document {
	return &types.Document{
		Path:        path,
		Format:      string(format),
		ExtractedAt: now().UTC(),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
