package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCertificateNumber builds a human-readable, unique certificate
// number like CERT-2026-3F9A1C42
func GenerateCertificateNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("CERT-%d-%s", time.Now().Year(), token)
}
