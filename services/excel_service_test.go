package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestImportSitesRunsPipeline(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewExcelService(db)

	buf := workbookBytes(t, [][]string{
		{"Plan ID", "Site ID", "Name", "Soft AT Status", "Phy AT Status"},
		{"P-001", "S-001", "Alpha", "accepted", "pass"},
		{"P-002", "S-002", "Beta", "", ""},
	})

	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnRows(sqlmock.NewRows([]string{"plan_id"}))
	mock.ExpectExec("INSERT INTO `sites`").
		WillReturnResult(sqlmock.NewResult(0, 2))

	result, records, err := svc.ImportSites(context.Background(), buf)
	if err != nil {
		t.Fatalf("ImportSites: %v", err)
	}
	if records != 2 {
		t.Errorf("got %d records, want 2", records)
	}
	if result.Successful != 2 || result.Failed != 0 {
		t.Errorf("got successful=%d failed=%d, want 2/0", result.Successful, result.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestImportSitesRejectsHeaderOnlyWorkbook(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewExcelService(db)

	buf := workbookBytes(t, [][]string{{"Plan ID", "Site ID"}})

	_, _, err := svc.ImportSites(context.Background(), buf)
	if !errors.Is(err, ErrWorkbookEmpty) {
		t.Fatalf("got %v, want ErrWorkbookEmpty", err)
	}
}

func TestImportSitesRequiresPlanIDColumn(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewExcelService(db)

	buf := workbookBytes(t, [][]string{
		{"Site ID", "Name"},
		{"S-001", "Alpha"},
	})

	_, _, err := svc.ImportSites(context.Background(), buf)
	if err == nil {
		t.Fatal("expected an error for a workbook without a plan_id column")
	}
}

func TestNormalizeWorkbookHeaders(t *testing.T) {
	headers := normalizeWorkbookHeaders([]string{"Plan ID", " site id ", "HOP AB", "", "Max Ant Size"})

	want := map[string]int{"plan_id": 0, "site_id": 1, "hop_ab": 2, "max_ant_size": 4}
	for key, idx := range want {
		if headers[key] != idx {
			t.Errorf("header %q = column %d, want %d", key, headers[key], idx)
		}
	}
	if _, ok := headers[""]; ok {
		t.Error("blank headers must be dropped")
	}
}

func TestMapRowToSiteNormalizesATStatuses(t *testing.T) {
	site := mapRowToSite(map[string]string{
		"plan_id":        "P-001",
		"site_id":        "S-001",
		"soft_at_status": "accepted",
		"phy_at_status":  "FAILED",
		"both_at_status": "wip",
	})

	if site.SoftAtStatus != "Approved" {
		t.Errorf("soft AT = %q, want Approved", site.SoftAtStatus)
	}
	if site.PhyAtStatus != "Rejected" {
		t.Errorf("phy AT = %q, want Rejected", site.PhyAtStatus)
	}
	if site.BothAtStatus != "Pending" {
		t.Errorf("both AT = %q, want Pending", site.BothAtStatus)
	}
}
