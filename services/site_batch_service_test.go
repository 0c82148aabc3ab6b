package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vendor-management-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func planRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"plan_id"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	return rows
}

func siteInput(planID, siteID string) SiteInput {
	return SiteInput{Site: models.Site{PlanID: planID, SiteID: siteID, Name: "Site " + siteID}}
}

func TestBatchUpsertEmptyBatch(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	result, err := svc.BatchUpsert(context.Background(), nil)
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 0 || result.Failed != 0 || len(result.Errors) != 0 {
		t.Errorf("expected zero result, got %+v", result)
	}
	if result.Errors == nil {
		t.Error("errors must be an empty slice, not nil")
	}
	// No store calls at all for an empty batch.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected store calls: %v", err)
	}
}

func TestBatchUpsertInsertsNewRecords(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows())
	mock.ExpectExec("INSERT INTO `sites`").
		WillReturnResult(sqlmock.NewResult(0, 3))

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
		siteInput("P-002", "S-002"),
		siteInput("P-003", "S-003"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 3 || result.Failed != 0 {
		t.Errorf("got successful=%d failed=%d, want 3/0", result.Successful, result.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertSplitsInsertsAndUpdates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	// Insert and update sub-batches run concurrently, so statement order is
	// not deterministic.
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows("P-001", "P-002"))
	mock.ExpectExec("UPDATE `sites` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `sites` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `sites`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
		siteInput("P-002", "S-002"),
		siteInput("P-900", "S-900"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 3 || result.Failed != 0 {
		t.Errorf("got successful=%d failed=%d, want 3/0", result.Successful, result.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertDuplicateSiteIDFallsBackPerRecord(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	dupErr := errors.New("Error 1062 (23000): Duplicate entry 'S-002' for key 'sites.idx_sites_site_id'")

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows())
	// Multi-row insert fails, then the chunk replays record by record.
	mock.ExpectExec("INSERT INTO `sites`").WillReturnError(dupErr)
	mock.ExpectExec("INSERT INTO `sites`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `sites`").WillReturnError(dupErr)

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
		siteInput("P-002", "S-002"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 1 || result.Failed != 1 {
		t.Fatalf("got successful=%d failed=%d, want 1/1", result.Successful, result.Failed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	e := result.Errors[0]
	if e.PlanID != "P-002" || e.SiteID != "S-002" {
		t.Errorf("error attributed to %s/%s, want P-002/S-002", e.PlanID, e.SiteID)
	}
	if e.Error != "Site ID 'S-002' already exists" {
		t.Errorf("got error message %q", e.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertEmptyPlanIDRoutesToInsert(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	mock.MatchExpectationsInOrder(false)

	// The classification query sees only the non-empty planId.
	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WithArgs("P-001").
		WillReturnRows(planRows("P-001"))
	mock.ExpectExec("UPDATE `sites` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `sites`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
		siteInput("", "S-777"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 2 || result.Failed != 0 {
		t.Errorf("got successful=%d failed=%d, want 2/0", result.Successful, result.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertClassificationFailureIsFatal(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnError(errors.New("connection reset"))

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
	})
	if err == nil {
		t.Fatal("expected an error when the classification read fails")
	}
	if result != nil {
		t.Errorf("expected nil result on fatal error, got %+v", result)
	}
	if !strings.Contains(err.Error(), "classify existing plan IDs") {
		t.Errorf("got error %q", err)
	}
}

func TestBatchUpsertSnapshotRaceSurfacesConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	// Another import created P-001 between the snapshot and our insert. The
	// plan_id uniqueness violation is reported per record, not swallowed.
	raceErr := errors.New("Error 1062 (23000): Duplicate entry 'P-001' for key 'sites.idx_sites_plan_id'")

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows())
	mock.ExpectExec("INSERT INTO `sites`").WillReturnError(raceErr)
	mock.ExpectExec("INSERT INTO `sites`").WillReturnError(raceErr)

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 0 || result.Failed != 1 {
		t.Fatalf("got successful=%d failed=%d, want 0/1", result.Successful, result.Failed)
	}
	if !strings.Contains(result.Errors[0].Error, "Duplicate entry 'P-001'") {
		t.Errorf("got error message %q", result.Errors[0].Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertChunksLargeBatches(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows())
	// 250 records split into sub-batches of at most 100.
	mock.ExpectExec("INSERT INTO `sites`").WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectExec("INSERT INTO `sites`").WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectExec("INSERT INTO `sites`").WillReturnResult(sqlmock.NewResult(0, 50))

	inputs := make([]SiteInput, 250)
	for i := range inputs {
		inputs[i] = siteInput(fmt.Sprintf("P-%04d", i), fmt.Sprintf("S-%04d", i))
	}

	result, err := svc.BatchUpsert(context.Background(), inputs)
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 250 || result.Failed != 0 {
		t.Errorf("got successful=%d failed=%d, want 250/0", result.Successful, result.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertUpdateFailureIsIsolated(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSiteBatchService(db)

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(planRows("P-001", "P-002"))
	mock.ExpectExec("UPDATE `sites` SET").
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectExec("UPDATE `sites` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.BatchUpsert(context.Background(), []SiteInput{
		siteInput("P-001", "S-001"),
		siteInput("P-002", "S-002"),
	})
	if err != nil {
		t.Fatalf("BatchUpsert: %v", err)
	}
	if result.Successful != 1 || result.Failed != 1 {
		t.Fatalf("got successful=%d failed=%d, want 1/1", result.Successful, result.Failed)
	}
	if result.Errors[0].PlanID != "P-001" {
		t.Errorf("failure attributed to %s, want P-001", result.Errors[0].PlanID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSiteUpdateAssignmentsExcludeImmutableColumns(t *testing.T) {
	site := models.Site{
		ID:     "row-id",
		PlanID: "P-001",
		SiteID: "S-001",
		Name:   "Alpha",
	}
	assignments := siteUpdateAssignments(site)

	for _, col := range []string{"id", "site_id", "plan_id", "created_at"} {
		if _, ok := assignments[col]; ok {
			t.Errorf("column %s must not be updatable", col)
		}
	}
	if assignments["name"] != "Alpha" {
		t.Errorf("name assignment missing, got %v", assignments["name"])
	}
}

func TestBatchUpsertAppliesATStatusPolicy(t *testing.T) {
	in := SiteInput{Site: models.Site{
		PlanID:       "P-001",
		SiteID:       "S-001",
		SoftAtStatus: "Approved",
		PhyAtStatus:  "Approved",
		Status:       "Pending",
	}}
	site := in.Site
	site.ApplyATStatusPolicy()
	if site.Status != "Approved" {
		t.Errorf("both AT approved should set status Approved, got %q", site.Status)
	}

	site.PhyAtStatus = "Rejected"
	site.ApplyATStatusPolicy()
	if site.Status != "Pending" {
		t.Errorf("a non-approved AT should force status Pending, got %q", site.Status)
	}
}

func TestIsDuplicateSiteIDErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"site id index", errors.New("Error 1062 (23000): Duplicate entry 'S-1' for key 'sites.idx_sites_site_id'"), true},
		{"plan id index", errors.New("Error 1062 (23000): Duplicate entry 'P-1' for key 'sites.idx_sites_plan_id'"), false},
		{"other error", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateSiteIDErr(tt.err); got != tt.want {
				t.Errorf("IsDuplicateSiteIDErr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateSiteInsertError(t *testing.T) {
	dup := errors.New("Error 1062 (23000): Duplicate entry 'S-042' for key 'sites.idx_sites_site_id'")
	if got := translateSiteInsertError(dup, "S-fallback"); got != "Site ID 'S-042' already exists" {
		t.Errorf("got %q", got)
	}

	// No extractable value in the message: fall back to the record's own id.
	bare := errors.New("Duplicate entry for key site_id")
	if got := translateSiteInsertError(bare, "S-fallback"); got != "Site ID 'S-fallback' already exists" {
		t.Errorf("got %q", got)
	}

	other := errors.New("lock wait timeout exceeded")
	if got := translateSiteInsertError(other, "S-1"); got != other.Error() {
		t.Errorf("non-duplicate errors must pass through, got %q", got)
	}
}

func TestChunkSites(t *testing.T) {
	sites := make([]models.Site, 7)
	chunks := chunkSites(sites, 3)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if len(chunks[0]) != 3 || len(chunks[1]) != 3 || len(chunks[2]) != 1 {
		t.Errorf("chunk sizes %d/%d/%d, want 3/3/1", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
	if chunkSites(nil, 3) != nil {
		t.Error("empty input should produce no chunks")
	}
}
