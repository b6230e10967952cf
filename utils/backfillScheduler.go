package utils

import (
	"certhub/config"
	"certhub/database"
	courseModels "certhub/models/course"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// backfillBatchLimit caps how many certificates one sweep will render
const backfillBatchLimit = 10

// logBackfill logs sweep events with timestamp
func logBackfill(message string) {
	log.Printf("[CERT-BACKFILL %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeBackfillScheduler starts the sweep that renders PDFs for issued
// certificates that still have no stored document
func InitializeBackfillScheduler() {
	logBackfill("Initializing certificate backfill scheduler...")

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.BackfillSchedule, RunBackfillSweep); err != nil {
		logBackfill("Invalid backfill schedule: " + err.Error())
		return
	}
	c.Start()

	logBackfill("Backfill scheduler started (" + config.AppConfig.BackfillSchedule + ")")
}

// RunBackfillSweep processes up to backfillBatchLimit certificates lacking a
// document URL. Per-item failures are logged and skipped so one bad record
// cannot stall the rest; completed items are never reselected because the
// selection is on the empty URL itself.
func RunBackfillSweep() {
	db := database.Database.Db
	ctx := context.Background()

	pending, err := pendingCertificates(db, backfillBatchLimit)
	if err != nil {
		logBackfill("Error fetching certificates: " + err.Error())
		return
	}
	if len(pending) == 0 {
		return
	}

	// the whole sweep needs the complete font set; skip the run if it cannot
	// be assembled rather than failing item by item
	cache, err := LoadCertificateFonts(ctx)
	if err != nil {
		logBackfill("Skipping sweep, font cache unavailable: " + err.Error())
		return
	}

	generated := 0
	for i := range pending {
		cert := &pending[i]
		if err := GenerateAndUploadCertificate(ctx, cert, cache); err != nil {
			logBackfill("Certificate " + cert.CertificateNumber + " failed: " + err.Error())
			continue
		}
		generated++
	}

	logBackfill(fmt.Sprintf("Sweep complete: %d/%d certificate(s) generated", generated, len(pending)))
}

// pendingCertificates selects the next certificates still lacking a stored
// document, oldest first. A certificate gains its URL only on success, so
// finished items never come back.
func pendingCertificates(db *gorm.DB, limit int) ([]courseModels.Certificate, error) {
	var pending []courseModels.Certificate
	err := db.
		Where("document_url = '' AND is_deleted = false").
		Order("created_at asc").
		Limit(limit).
		Find(&pending).Error
	return pending, err
}
