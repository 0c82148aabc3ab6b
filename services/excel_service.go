package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"vendor-management-api/models"
	"vendor-management-api/utils"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrWorkbookEmpty = errors.New("workbook has no data rows")

// ExcelService turns uploaded site workbooks into batch upsert runs and
// renders the current sites table back out as a workbook.
type ExcelService struct {
	db      *gorm.DB
	batch   *SiteBatchService
	vendors *VendorService
}

func NewExcelService(db *gorm.DB) *ExcelService {
	return &ExcelService{
		db:      db,
		batch:   NewSiteBatchService(db),
		vendors: NewVendorService(db),
	}
}

// ImportSites reads the first worksheet, maps rows onto site records and
// feeds them through the batch upsert pipeline. Vendors are referenced by
// name in the sheet and resolved (or created) before the pipeline runs. The
// record count is returned alongside so callers can report how many rows a
// failed run covered.
func (s *ExcelService) ImportSites(ctx context.Context, r io.Reader) (*BatchUpsertResult, int, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) < 2 {
		return nil, 0, ErrWorkbookEmpty
	}

	headers := normalizeWorkbookHeaders(rows[0])
	if _, ok := headers["plan_id"]; !ok {
		return nil, 0, errors.New("column plan_id missing from workbook")
	}

	vendorIDs := map[string]string{}
	inputs := make([]SiteInput, 0, len(rows)-1)
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		values := readWorkbookRow(headers, rows[rowIdx])

		site := mapRowToSite(values)
		if name := strings.TrimSpace(values["vendor_name"]); name != "" && site.VendorID == "" {
			id, ok := vendorIDs[name]
			if !ok {
				vendor, err := s.vendors.GetOrCreateByName(ctx, name)
				if err != nil {
					log.Printf("Import: could not resolve vendor %q: %v", name, err)
					vendorIDs[name] = ""
				} else {
					id = vendor.ID
					vendorIDs[name] = id
				}
			}
			site.VendorID = id
		}

		idx := rowIdx + 1 // spreadsheet row numbers are 1-based with a header
		inputs = append(inputs, SiteInput{Site: site, RowIndex: &idx})
	}

	result, err := s.batch.BatchUpsert(ctx, inputs)
	return result, len(inputs), err
}

// ExportSites writes every site row into a new workbook.
func (s *ExcelService) ExportSites(ctx context.Context) (*excelize.File, error) {
	var sites []models.Site
	if err := s.db.WithContext(ctx).Order("plan_id").Find(&sites).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"Plan ID", "Site ID", "Name", "City", "State", "District", "Circle",
		"Vendor ID", "Status", "Hop AB", "Hop BA", "Max Ant Size",
		"Soft AT Status", "Phy AT Status", "Site A Installation Date",
		"Site B Installation Date", "Alignment Date",
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, site := range sites {
		values := []string{
			site.PlanID, site.SiteID, site.Name, site.City, site.State,
			site.District, site.Circle, site.VendorID, site.Status,
			site.HopAB, site.HopBA, site.MaxAntSize,
			site.SoftAtStatus, site.PhyAtStatus, site.SiteAInstallationDate,
			site.SiteBInstallationDate, site.AlignmentDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	return f.GetRows(sheet)
}

// normalizeWorkbookHeaders maps snake_cased header names to column indexes,
// so "Plan ID", "plan id" and "plan_id" all address the same column.
func normalizeWorkbookHeaders(row []string) map[string]int {
	headers := make(map[string]int)
	for idx, h := range row {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			headers[key] = idx
		}
	}
	return headers
}

func readWorkbookRow(headers map[string]int, row []string) map[string]string {
	values := make(map[string]string)
	for key, idx := range headers {
		if idx < len(row) {
			values[key] = strings.TrimSpace(row[idx])
		}
	}
	return values
}

func mapRowToSite(values map[string]string) models.Site {
	return models.Site{
		PlanID:   values["plan_id"],
		SiteID:   values["site_id"],
		Sno:      values["sno"],
		Name:     values["name"],
		Address:  values["address"],
		City:     values["city"],
		State:    values["state"],
		District: values["district"],
		Circle:   values["circle"],
		Project:  values["project"],
		VendorID: values["vendor_id"],
		ZoneID:   values["zone_id"],

		PartnerCode: values["partner_code"],
		PartnerName: values["partner_name"],

		HopType: values["hop_type"],
		HopAB:   values["hop_ab"],
		HopBA:   values["hop_ba"],

		SiteAAntDia: values["site_a_ant_dia"],
		SiteBAntDia: values["site_b_ant_dia"],
		MaxAntSize:  values["max_ant_size"],
		SiteAName:   values["site_a_name"],
		SiteBName:   values["site_b_name"],

		TocoVendorA: values["toco_vendor_a"],
		TocoIDA:     values["toco_id_a"],
		TocoVendorB: values["toco_vendor_b"],
		TocoIDB:     values["toco_id_b"],

		MediaAvailabilityStatus: values["media_availability_status"],

		SrNoSiteA:   values["sr_no_site_a"],
		SrDateSiteA: values["sr_date_site_a"],
		SrNoSiteB:   values["sr_no_site_b"],
		SrDateSiteB: values["sr_date_site_b"],
		HopSrDate:   values["hop_sr_date"],

		RfaiOfferedDateSiteA:     values["rfai_offered_date_site_a"],
		RfaiOfferedDateSiteB:     values["rfai_offered_date_site_b"],
		RfaiSurveyCompletionDate: values["rfai_survey_completion_date"],
		RfiSurveyAllocationDate:  values["rfi_survey_allocation_date"],

		MoNumberSiteA:           values["mo_number_site_a"],
		MoDateSiteA:             values["mo_date_site_a"],
		MoNumberSiteB:           values["mo_number_site_b"],
		MoDateSiteB:             values["mo_date_site_b"],
		MaterialDeliveryStatus:  values["material_delivery_status"],
		HopMaterialDispatchDate: values["hop_material_dispatch_date"],
		HopMaterialDeliveryDate: values["hop_material_delivery_date"],

		SiteAInstallationDate: values["site_a_installation_date"],
		SiteBInstallationDate: values["site_b_installation_date"],
		HopIcDate:             values["hop_ic_date"],
		AlignmentDate:         values["alignment_date"],
		HopInstallationRemark: values["hop_installation_remark"],

		VisibleInNms:   values["visible_in_nms"],
		NmsVisibleDate: values["nms_visible_date"],

		SoftAtOfferDate:      values["soft_at_offer_date"],
		SoftAtAcceptanceDate: values["soft_at_acceptance_date"],
		SoftAtStatus:         utils.NormalizeATStatus(values["soft_at_status"]),
		SoftAtRemark:         values["soft_at_remark"],
		PhyAtOfferDate:       values["phy_at_offer_date"],
		PhyAtAcceptanceDate:  values["phy_at_acceptance_date"],
		PhyAtStatus:          utils.NormalizeATStatus(values["phy_at_status"]),
		PhyAtRemark:          values["phy_at_remark"],
		BothAtStatus:         utils.NormalizeATStatus(values["both_at_status"]),

		Descope:            values["descope"],
		ReasonOfExtraVisit: values["reason_of_extra_visit"],
	}
}
