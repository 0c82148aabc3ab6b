package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is one microwave hop record tracked from survey to AT acceptance.
// PlanID is the business key used for upserts; SiteID is a separately-unique
// human-readable identifier and is never changed after the row is created.
// Date fields are stored as text exactly as supplied by the import sheets.
type Site struct {
	ID        string `gorm:"primaryKey;column:id" json:"id"`
	PlanID    string `gorm:"column:plan_id;uniqueIndex:idx_sites_plan_id" json:"planId"`
	SiteID    string `gorm:"column:site_id;uniqueIndex:idx_sites_site_id" json:"siteId"`
	Sno       string `gorm:"column:sno" json:"sno,omitempty"`
	Name      string `gorm:"column:name" json:"name,omitempty"`
	Address   string `gorm:"column:address" json:"address,omitempty"`
	City      string `gorm:"column:city" json:"city,omitempty"`
	State     string `gorm:"column:state" json:"state,omitempty"`
	District  string `gorm:"column:district" json:"district,omitempty"`
	Circle    string `gorm:"column:circle" json:"circle,omitempty"`
	Project   string `gorm:"column:project" json:"project,omitempty"`
	VendorID  string `gorm:"column:vendor_id;index" json:"vendorId,omitempty"`
	ZoneID    string `gorm:"column:zone_id" json:"zoneId,omitempty"`
	Status    string `gorm:"column:status;default:Pending" json:"status"`

	PartnerCode string `gorm:"column:partner_code" json:"partnerCode,omitempty"`
	PartnerName string `gorm:"column:partner_name" json:"partnerName,omitempty"`

	// HOP information
	HopType string `gorm:"column:hop_type" json:"hopType,omitempty"`
	HopAB   string `gorm:"column:hop_ab" json:"hopAB,omitempty"`
	HopBA   string `gorm:"column:hop_ba" json:"hopBA,omitempty"`

	// Antenna information
	SiteAAntDia string `gorm:"column:site_a_ant_dia" json:"siteAAntDia,omitempty"`
	SiteBAntDia string `gorm:"column:site_b_ant_dia" json:"siteBAntDia,omitempty"`
	MaxAntSize  string `gorm:"column:max_ant_size" json:"maxAntSize,omitempty"`
	SiteAName   string `gorm:"column:site_a_name" json:"siteAName,omitempty"`
	SiteBName   string `gorm:"column:site_b_name" json:"siteBName,omitempty"`

	// Tower company references
	TocoVendorA string `gorm:"column:toco_vendor_a" json:"tocoVendorA,omitempty"`
	TocoIDA     string `gorm:"column:toco_id_a" json:"tocoIdA,omitempty"`
	TocoVendorB string `gorm:"column:toco_vendor_b" json:"tocoVendorB,omitempty"`
	TocoIDB     string `gorm:"column:toco_id_b" json:"tocoIdB,omitempty"`

	MediaAvailabilityStatus string `gorm:"column:media_availability_status" json:"mediaAvailabilityStatus,omitempty"`

	// Survey / service request milestones
	SrNoSiteA   string `gorm:"column:sr_no_site_a" json:"srNoSiteA,omitempty"`
	SrDateSiteA string `gorm:"column:sr_date_site_a" json:"srDateSiteA,omitempty"`
	SrNoSiteB   string `gorm:"column:sr_no_site_b" json:"srNoSiteB,omitempty"`
	SrDateSiteB string `gorm:"column:sr_date_site_b" json:"srDateSiteB,omitempty"`
	HopSrDate   string `gorm:"column:hop_sr_date" json:"hopSrDate,omitempty"`

	RfaiOfferedDateSiteA     string `gorm:"column:rfai_offered_date_site_a" json:"rfaiOfferedDateSiteA,omitempty"`
	RfaiOfferedDateSiteB     string `gorm:"column:rfai_offered_date_site_b" json:"rfaiOfferedDateSiteB,omitempty"`
	RfaiSurveyCompletionDate string `gorm:"column:rfai_survey_completion_date" json:"rfaiSurveyCompletionDate,omitempty"`
	RfiSurveyAllocationDate  string `gorm:"column:rfi_survey_allocation_date" json:"rfiSurveyAllocationDate,omitempty"`

	// Material movement
	MoNumberSiteA           string `gorm:"column:mo_number_site_a" json:"moNumberSiteA,omitempty"`
	MoDateSiteA             string `gorm:"column:mo_date_site_a" json:"moDateSiteA,omitempty"`
	MoNumberSiteB           string `gorm:"column:mo_number_site_b" json:"moNumberSiteB,omitempty"`
	MoDateSiteB             string `gorm:"column:mo_date_site_b" json:"moDateSiteB,omitempty"`
	MaterialDeliveryStatus  string `gorm:"column:material_delivery_status" json:"materialDeliveryStatus,omitempty"`
	HopMaterialDispatchDate string `gorm:"column:hop_material_dispatch_date" json:"hopMaterialDispatchDate,omitempty"`
	HopMaterialDeliveryDate string `gorm:"column:hop_material_delivery_date" json:"hopMaterialDeliveryDate,omitempty"`

	// Installation
	SiteAInstallationDate string `gorm:"column:site_a_installation_date" json:"siteAInstallationDate,omitempty"`
	SiteBInstallationDate string `gorm:"column:site_b_installation_date" json:"siteBInstallationDate,omitempty"`
	HopIcDate             string `gorm:"column:hop_ic_date" json:"hopIcDate,omitempty"`
	AlignmentDate         string `gorm:"column:alignment_date" json:"alignmentDate,omitempty"`
	HopInstallationRemark string `gorm:"column:hop_installation_remark" json:"hopInstallationRemark,omitempty"`

	// NMS visibility
	VisibleInNms   string `gorm:"column:visible_in_nms" json:"visibleInNms,omitempty"`
	NmsVisibleDate string `gorm:"column:nms_visible_date" json:"nmsVisibleDate,omitempty"`

	// Acceptance testing
	SoftAtOfferDate      string `gorm:"column:soft_at_offer_date" json:"softAtOfferDate,omitempty"`
	SoftAtAcceptanceDate string `gorm:"column:soft_at_acceptance_date" json:"softAtAcceptanceDate,omitempty"`
	SoftAtStatus         string `gorm:"column:soft_at_status" json:"softAtStatus,omitempty"`
	SoftAtRemark         string `gorm:"column:soft_at_remark" json:"softAtRemark,omitempty"`
	PhyAtOfferDate       string `gorm:"column:phy_at_offer_date" json:"phyAtOfferDate,omitempty"`
	PhyAtAcceptanceDate  string `gorm:"column:phy_at_acceptance_date" json:"phyAtAcceptanceDate,omitempty"`
	PhyAtStatus          string `gorm:"column:phy_at_status" json:"phyAtStatus,omitempty"`
	PhyAtRemark          string `gorm:"column:phy_at_remark" json:"phyAtRemark,omitempty"`
	BothAtStatus         string `gorm:"column:both_at_status" json:"bothAtStatus,omitempty"`

	Descope            string `gorm:"column:descope" json:"descope,omitempty"`
	ReasonOfExtraVisit string `gorm:"column:reason_of_extra_visit" json:"reasonOfExtraVisit,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Site) TableName() string {
	return "sites"
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ApplyATStatusPolicy keeps the overall status in lockstep with the two AT
// verdicts: Approved only when both soft and physical AT are Approved,
// Pending otherwise.
func (s *Site) ApplyATStatusPolicy() {
	if s.SoftAtStatus == "Approved" && s.PhyAtStatus == "Approved" {
		s.Status = "Approved"
	} else {
		s.Status = "Pending"
	}
}
