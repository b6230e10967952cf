package utils

import (
	"context"
	"testing"

	"certhub/config"
	"certhub/database"
	courseModels "certhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSweepDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courseModels.Course{}, &courseModels.Certificate{}))
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{}
	return db
}

func TestPendingCertificatesSkipsStoredDocuments(t *testing.T) {
	db := setupSweepDB(t)

	done := courseModels.Certificate{
		CertificateNumber: "CERT-DONE",
		DocumentURL:       "https://cdn.example.com/certificates/certificate_1.pdf",
	}
	todo := courseModels.Certificate{CertificateNumber: "CERT-TODO"}
	require.NoError(t, db.Create(&done).Error)
	require.NoError(t, db.Create(&todo).Error)

	pending, err := pendingCertificates(db, backfillBatchLimit)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "CERT-TODO", pending[0].CertificateNumber)

	// once a URL lands, the certificate drops out of every later sweep
	pending[0].DocumentURL = "https://cdn.example.com/certificates/certificate_2.pdf"
	require.NoError(t, db.Save(&pending[0]).Error)

	pending, err = pendingCertificates(db, backfillBatchLimit)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestPendingCertificatesHonorsLimit(t *testing.T) {
	db := setupSweepDB(t)

	for i := 0; i < backfillBatchLimit+3; i++ {
		cert := courseModels.Certificate{CertificateNumber: "CERT-" + string(rune('A'+i))}
		require.NoError(t, db.Create(&cert).Error)
	}

	pending, err := pendingCertificates(db, backfillBatchLimit)
	require.NoError(t, err)
	assert.Len(t, pending, backfillBatchLimit)
}

func TestGenerateAndUploadSkipsStoredDocument(t *testing.T) {
	db := setupSweepDB(t)

	// the course does not exist, so any re-attempt would fail on the lookup
	cert := courseModels.Certificate{
		CourseID:          999,
		CertificateNumber: "CERT-STORED",
		DocumentURL:       "https://cdn.example.com/certificates/certificate_3.pdf",
	}
	require.NoError(t, db.Create(&cert).Error)

	require.NoError(t, GenerateAndUploadCertificate(context.Background(), &cert, nil))

	var stored courseModels.Certificate
	require.NoError(t, db.First(&stored, cert.ID).Error)
	assert.Equal(t, "https://cdn.example.com/certificates/certificate_3.pdf", stored.DocumentURL)
}

func TestGenerateAndUploadAttemptsMissingDocument(t *testing.T) {
	db := setupSweepDB(t)

	course := courseModels.Course{Name: "CPR Level C", ExpiryMonths: 24}
	require.NoError(t, db.Create(&course).Error)

	cert := courseModels.Certificate{CourseID: course.ID, CertificateNumber: "CERT-EMPTY"}
	require.NoError(t, db.Create(&cert).Error)

	// no template URL is configured, so getting past the stored-URL check
	// must surface the template error instead of silently succeeding
	err := GenerateAndUploadCertificate(context.Background(), &cert, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template")
}
