package importer

import (
	"testing"
	"time"

	courseModels "certhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T, migrate ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migrate...))
	return db
}

func matchedRows(issue time.Time) []MatchedRow {
	cpr := courseModels.Course{Name: "CPR Level C", ExpiryMonths: 24}
	cpr.ID = 1
	fa := courseModels.Course{Name: "First Aid Basic", ExpiryMonths: 24}
	fa.ID = 2

	return []MatchedRow{
		{
			Row: Row{Fields: map[string]string{
				ColStudentName: "Jane Doe",
				ColEmail:       "jane@example.com",
			}},
			Course:    cpr,
			IssueDate: issue,
		},
		{
			Row: Row{Fields: map[string]string{
				ColStudentName: "John Roe",
				ColEmail:       "john@example.com",
			}},
			Course:    fa,
			IssueDate: issue,
		},
	}
}

func TestSubmitBatchCreatesRosterAndRequests(t *testing.T) {
	db := testDB(t, &courseModels.Roster{}, &courseModels.CertificateRequest{})
	issue := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	roster, requests, err := SubmitBatch(db, BatchInput{
		Rows:       matchedRows(issue),
		LocationID: 7,
		BatchName:  "January intake",
		UserID:     42,
	})
	require.NoError(t, err)
	require.NotNil(t, roster)

	assert.Equal(t, 2, roster.TotalCount)
	assert.Equal(t, courseModels.RosterSubmitted, roster.Status)
	require.Len(t, requests, 2)

	var stored []courseModels.CertificateRequest
	require.NoError(t, db.Where("roster_id = ?", roster.ID).Find(&stored).Error)
	require.Len(t, stored, 2)

	for _, req := range stored {
		require.NotNil(t, req.RosterID)
		require.NotNil(t, req.BatchID)
		assert.Equal(t, roster.ID, *req.RosterID)
		assert.Equal(t, roster.ID, *req.BatchID)
		assert.Equal(t, uint(7), req.LocationID)
		assert.Equal(t, courseModels.RequestPending, req.Status)
		// 24 months at 30 days/month lands close to two years out
		assert.Equal(t, issue.AddDate(0, 0, 720), req.ExpiryDate)
	}
}

func TestSubmitBatchRollsBackRosterOnRequestFailure(t *testing.T) {
	// no certificate_requests table, so the bulk insert must fail and the
	// transaction must take the roster down with it
	db := testDB(t, &courseModels.Roster{})

	_, _, err := SubmitBatch(db, BatchInput{
		Rows:       matchedRows(time.Now()),
		LocationID: 7,
		BatchName:  "doomed batch",
		UserID:     42,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&courseModels.Roster{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitBatchRejectsEmptyInput(t *testing.T) {
	db := testDB(t, &courseModels.Roster{}, &courseModels.CertificateRequest{})
	_, _, err := SubmitBatch(db, BatchInput{BatchName: "empty"})
	assert.Error(t, err)
}

func TestSubmitBatchKeepsErrorRows(t *testing.T) {
	db := testDB(t, &courseModels.Roster{}, &courseModels.CertificateRequest{})

	bad := Row{Line: 3, Fields: map[string]string{ColStudentName: ""}, Warnings: []string{"missing student name"}}
	roster, _, err := SubmitBatch(db, BatchInput{
		Rows:       matchedRows(time.Now()),
		ErrorRows:  []Row{bad},
		LocationID: 7,
		BatchName:  "with rejects",
		UserID:     42,
	})
	require.NoError(t, err)

	var stored courseModels.Roster
	require.NoError(t, db.First(&stored, roster.ID).Error)
	assert.Contains(t, string(stored.ErrorRows), "missing student name")
}
