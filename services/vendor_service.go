package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vendor-management-api/models"

	"gorm.io/gorm"
)

// VendorService covers vendor lookups shared by the HTTP layer and the Excel
// import (which resolves vendor names to IDs row by row).
type VendorService struct {
	db *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

func (s *VendorService) GetByName(ctx context.Context, name string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetOrCreateByName returns the vendor with the given name, creating a
// placeholder record when none exists. Import sheets reference vendors only
// by name, so unseen names get a minimal row that admins complete later.
func (s *VendorService) GetOrCreateByName(ctx context.Context, name string) (*models.Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("vendor name is required")
	}

	vendor, err := s.GetByName(ctx, name)
	if err == nil {
		return vendor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stamp := time.Now().UnixMilli()
	created := models.Vendor{
		Name:   name,
		Email:  fmt.Sprintf("%s@vendor.local", strings.ReplaceAll(name, " ", "")),
		Aadhar: fmt.Sprintf("TEMP%d", stamp),
		Pan:    fmt.Sprintf("TEMP%d", stamp),
		Status: "Pending",
	}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
