package services

import (
	"context"
	"sync"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/pkg/logger"
)

// VisitSummary is the dashboard's headline request counts. A staff record
// counts as one request; vendor and family visits count once per shared
// request id, matching what the request list shows.
type VisitSummary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Total    int `json:"total"`
}

// InterfaceAggregationService merges the three upstream sources into the
// canonical visitor view
type InterfaceAggregationService interface {
	FetchVisitors(ctx context.Context, status string) ([]models.Visitor, error)
	Summary(ctx context.Context) (VisitSummary, error)
}

// AggregationService implements InterfaceAggregationService
type AggregationService struct {
	api InterfaceVisitAPIService
}

// NewAggregationService creates an AggregationService
func NewAggregationService(api InterfaceVisitAPIService) InterfaceAggregationService {
	return &AggregationService{api: api}
}

// FetchVisitors fetches all three sources concurrently for one status and
// merges them in source order: staff, then grouped vendor, then grouped
// family. A failed source contributes nothing instead of failing the whole
// view, so one API being down never blanks the dashboard.
func (s *AggregationService) FetchVisitors(ctx context.Context, status string) ([]models.Visitor, error) {
	staff, vendor, family := s.fetchAll(ctx, status)

	visitors := make([]models.Visitor, 0, len(staff.Records)+len(vendor.Records)+len(family.Records))
	for _, rec := range staff.Records {
		visitors = append(visitors, MapStaffRecord(rec))
	}
	visitors = append(visitors, GroupVendorVisits(vendor.Records)...)
	visitors = append(visitors, GroupFamilyVisits(family.Records)...)
	return visitors, nil
}

// Summary fetches pending and approved counts in parallel
func (s *AggregationService) Summary(ctx context.Context) (VisitSummary, error) {
	var pending, approved int
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		pending = s.countForStatus(ctx, "pending")
	}()
	go func() {
		defer wg.Done()
		approved = s.countForStatus(ctx, "approved")
	}()
	wg.Wait()

	return VisitSummary{
		Pending:  pending,
		Approved: approved,
		Total:    pending + approved,
	}, nil
}

// countForStatus counts requests, not rows: staff rows count individually,
// vendor and family rows count once per request id after filtering
func (s *AggregationService) countForStatus(ctx context.Context, status string) int {
	staff, vendor, family := s.fetchAll(ctx, status)
	return len(staff.Records) + len(GroupVendorVisits(vendor.Records)) + len(GroupFamilyVisits(family.Records))
}

// fetchAll queries the three sources concurrently. Each failed source is
// logged and replaced with an empty envelope.
func (s *AggregationService) fetchAll(ctx context.Context, status string) (*models.StaffResponse, *models.VendorResponse, *models.FamilyResponse) {
	staff := &models.StaffResponse{Status: status, Count: 0, Records: []models.StaffRecord{}}
	vendor := &models.VendorResponse{Status: status, Count: 0, Records: []models.VendorVisitRecord{}}
	family := &models.FamilyResponse{Status: status, Count: 0, Records: []models.FamilyVisitRecord{}}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		resp, err := s.api.FetchStaffRequests(ctx, status)
		if err != nil {
			logger.Warning("staff API fetch failed for status %s: %v", status, err)
			return
		}
		staff = resp
	}()
	go func() {
		defer wg.Done()
		resp, err := s.api.FetchVendorVisits(ctx, status)
		if err != nil {
			logger.Warning("vendor API fetch failed for status %s: %v", status, err)
			return
		}
		vendor = resp
	}()
	go func() {
		defer wg.Done()
		resp, err := s.api.FetchFamilyVisits(ctx, status)
		if err != nil {
			logger.Warning("family API fetch failed for status %s: %v", status, err)
			return
		}
		family = resp
	}()
	wg.Wait()

	return staff, vendor, family
}
