package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"vendor-management-api/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// upsertBatchSize bounds one insert/update sub-batch. Keeps multi-row insert
// statements and their transactions small at thousand-record import scale.
const upsertBatchSize = 100

// SiteInput is one incoming site record from an import payload. RowIndex is
// client-side bookkeeping for spreadsheet error display; it never reaches the
// database.
type SiteInput struct {
	models.Site
	RowIndex *int `json:"rowIndex,omitempty"`
}

type UpsertError struct {
	PlanID string `json:"planId"`
	SiteID string `json:"siteId"`
	Error  string `json:"error"`
}

type BatchUpsertResult struct {
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Errors     []UpsertError `json:"errors"`
}

// SiteBatchService reconciles a batch of incoming site records against the
// sites table. Records whose planId already exists are updated in place,
// the rest are inserted; sub-batches run concurrently and each record's
// failure is isolated into the result's error list instead of aborting the
// import.
type SiteBatchService struct {
	db *gorm.DB
}

func NewSiteBatchService(db *gorm.DB) *SiteBatchService {
	return &SiteBatchService{db: db}
}

type unitResult struct {
	successful int
	failed     int
	errors     []UpsertError
}

// BatchUpsert runs the full pipeline: classify planIds in one query, split
// into insert/update groups, execute size-bounded sub-batches concurrently,
// and fold the per-unit results once every unit has finished.
//
// The returned error is non-nil only for batch-wide failures (the
// classification read); everything after that point is reported per record.
func (s *SiteBatchService) BatchUpsert(ctx context.Context, inputs []SiteInput) (*BatchUpsertResult, error) {
	result := &BatchUpsertResult{Errors: []UpsertError{}}
	if len(inputs) == 0 {
		return result, nil
	}

	planIDs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in.PlanID != "" {
			planIDs = append(planIDs, in.PlanID)
		}
	}

	existing, err := s.existingPlanIDs(ctx, planIDs)
	if err != nil {
		return nil, fmt.Errorf("classify existing plan IDs: %w", err)
	}

	// Split into insert and update groups. A record without a planId cannot
	// match an existing row, so it is routed to insert; the unique index is
	// the backstop if that assumption is ever wrong.
	var inserts, updates []models.Site
	for _, in := range inputs {
		site := in.Site
		site.ApplyATStatusPolicy()
		if site.PlanID != "" && existing[site.PlanID] {
			updates = append(updates, site)
		} else {
			inserts = append(inserts, site)
		}
	}

	insertChunks := chunkSites(inserts, upsertBatchSize)
	updateChunks := chunkSites(updates, upsertBatchSize)

	// Every sub-batch writes its result into its own slot, so no
	// synchronization beyond the errgroup barrier is needed.
	units := make([]unitResult, len(insertChunks)+len(updateChunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range insertChunks {
		i, chunk := i, chunk
		g.Go(func() error {
			units[i] = s.runInsertChunk(gctx, chunk)
			return nil
		})
	}
	for i, chunk := range updateChunks {
		i, chunk := len(insertChunks)+i, chunk
		g.Go(func() error {
			units[i] = s.runUpdateChunk(gctx, chunk)
			return nil
		})
	}
	// Units never return errors; Wait is purely the completion barrier.
	_ = g.Wait()

	for _, u := range units {
		result.Successful += u.successful
		result.Failed += u.failed
		result.Errors = append(result.Errors, u.errors...)
	}
	return result, nil
}

// existingPlanIDs resolves which of the incoming planIds are already in the
// store with a single set-membership query. This is a snapshot: a concurrent
// import can still race a record into existence afterwards, in which case the
// insert path's per-record fallback reports the constraint violation.
func (s *SiteBatchService) existingPlanIDs(ctx context.Context, planIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(planIDs))
	if len(planIDs) == 0 {
		return existing, nil
	}

	var found []string
	if err := s.db.WithContext(ctx).
		Model(&models.Site{}).
		Where("plan_id IN ?", planIDs).
		Pluck("plan_id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// runInsertChunk first attempts one multi-row insert. If that fails, the
// chunk is replayed record by record so a single bad row does not sacrifice
// its siblings; each individual failure becomes one error entry.
func (s *SiteBatchService) runInsertChunk(ctx context.Context, chunk []models.Site) unitResult {
	var res unitResult

	batch := make([]models.Site, len(chunk))
	copy(batch, chunk)
	if err := s.db.WithContext(ctx).Create(&batch).Error; err == nil {
		res.successful = len(chunk)
		return res
	}

	for i := range chunk {
		rec := chunk[i]
		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			res.failed++
			res.errors = append(res.errors, UpsertError{
				PlanID: orDash(rec.PlanID),
				SiteID: orDash(rec.SiteID),
				Error:  translateSiteInsertError(err, rec.SiteID),
			})
		} else {
			res.successful++
		}
	}
	return res
}

// runUpdateChunk applies each record individually, matched on planId. The
// siteId column is excluded from the assignment set: once written it is
// immutable, even if the import payload carries a different value.
func (s *SiteBatchService) runUpdateChunk(ctx context.Context, chunk []models.Site) unitResult {
	var res unitResult
	for i := range chunk {
		rec := chunk[i]
		err := s.db.WithContext(ctx).
			Model(&models.Site{}).
			Where("plan_id = ?", rec.PlanID).
			Updates(siteUpdateAssignments(rec)).Error
		if err != nil {
			res.failed++
			res.errors = append(res.errors, UpsertError{
				PlanID: orDash(rec.PlanID),
				SiteID: orDash(rec.SiteID),
				Error:  err.Error(),
			})
		} else {
			res.successful++
		}
	}
	return res
}

var duplicateEntryRe = regexp.MustCompile(`Duplicate entry '([^']*)'`)

// IsDuplicateSiteIDErr reports whether err is a uniqueness violation on the
// sites.site_id index.
func IsDuplicateSiteIDErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") && strings.Contains(msg, "site_id")
}

// translateSiteInsertError turns a site_id uniqueness violation into a
// message naming the offending identifier. The value is pulled from the MySQL
// error detail when present, falling back to the record's own siteId. All
// other store errors pass through verbatim.
func translateSiteInsertError(err error, siteID string) string {
	if !IsDuplicateSiteIDErr(err) {
		return err.Error()
	}
	value := siteID
	if m := duplicateEntryRe.FindStringSubmatch(err.Error()); m != nil && m[1] != "" {
		value = m[1]
	}
	return fmt.Sprintf("Site ID '%s' already exists", value)
}

func siteUpdateAssignments(site models.Site) map[string]interface{} {
	return map[string]interface{}{
		"sno":      site.Sno,
		"name":     site.Name,
		"address":  site.Address,
		"city":     site.City,
		"state":    site.State,
		"district": site.District,
		"circle":   site.Circle,
		"project":  site.Project,

		"vendor_id": site.VendorID,
		"zone_id":   site.ZoneID,
		"status":    site.Status,

		"partner_code": site.PartnerCode,
		"partner_name": site.PartnerName,

		"hop_type": site.HopType,
		"hop_ab":   site.HopAB,
		"hop_ba":   site.HopBA,

		"site_a_ant_dia": site.SiteAAntDia,
		"site_b_ant_dia": site.SiteBAntDia,
		"max_ant_size":   site.MaxAntSize,
		"site_a_name":    site.SiteAName,
		"site_b_name":    site.SiteBName,

		"toco_vendor_a": site.TocoVendorA,
		"toco_id_a":     site.TocoIDA,
		"toco_vendor_b": site.TocoVendorB,
		"toco_id_b":     site.TocoIDB,

		"media_availability_status": site.MediaAvailabilityStatus,

		"sr_no_site_a":   site.SrNoSiteA,
		"sr_date_site_a": site.SrDateSiteA,
		"sr_no_site_b":   site.SrNoSiteB,
		"sr_date_site_b": site.SrDateSiteB,
		"hop_sr_date":    site.HopSrDate,

		"rfai_offered_date_site_a":    site.RfaiOfferedDateSiteA,
		"rfai_offered_date_site_b":    site.RfaiOfferedDateSiteB,
		"rfai_survey_completion_date": site.RfaiSurveyCompletionDate,
		"rfi_survey_allocation_date":  site.RfiSurveyAllocationDate,

		"mo_number_site_a":           site.MoNumberSiteA,
		"mo_date_site_a":             site.MoDateSiteA,
		"mo_number_site_b":           site.MoNumberSiteB,
		"mo_date_site_b":             site.MoDateSiteB,
		"material_delivery_status":   site.MaterialDeliveryStatus,
		"hop_material_dispatch_date": site.HopMaterialDispatchDate,
		"hop_material_delivery_date": site.HopMaterialDeliveryDate,

		"site_a_installation_date": site.SiteAInstallationDate,
		"site_b_installation_date": site.SiteBInstallationDate,
		"hop_ic_date":              site.HopIcDate,
		"alignment_date":           site.AlignmentDate,
		"hop_installation_remark":  site.HopInstallationRemark,

		"visible_in_nms":   site.VisibleInNms,
		"nms_visible_date": site.NmsVisibleDate,

		"soft_at_offer_date":      site.SoftAtOfferDate,
		"soft_at_acceptance_date": site.SoftAtAcceptanceDate,
		"soft_at_status":          site.SoftAtStatus,
		"soft_at_remark":          site.SoftAtRemark,
		"phy_at_offer_date":       site.PhyAtOfferDate,
		"phy_at_acceptance_date":  site.PhyAtAcceptanceDate,
		"phy_at_status":           site.PhyAtStatus,
		"phy_at_remark":           site.PhyAtRemark,
		"both_at_status":          site.BothAtStatus,

		"descope":               site.Descope,
		"reason_of_extra_visit": site.ReasonOfExtraVisit,
	}
}

func chunkSites(sites []models.Site, size int) [][]models.Site {
	if len(sites) == 0 {
		return nil
	}
	chunks := make([][]models.Site, 0, (len(sites)+size-1)/size)
	for start := 0; start < len(sites); start += size {
		end := start + size
		if end > len(sites) {
			end = len(sites)
		}
		chunks = append(chunks, sites[start:end])
	}
	return chunks
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
