package services

import (
	"gateapp-http-service/internal/domain/models"
)

// Vendor records outside this category pair belong to other intake flows and
// are dropped before grouping.
const (
	vendorCategoryFilter    = "External"
	vendorSubCategoryFilter = "Vendor / Supplier"
)

// GroupVendorVisits collapses vendor visit records that share a request_id
// into one Visitor per request. Records are first filtered to the vendor
// intake category. The representative Visitor is mapped from the first record
// of each group in input order, and every group member appears in
// GroupedVisitors, single-member groups included.
func GroupVendorVisits(records []models.VendorVisitRecord) []models.Visitor {
	filtered := make([]models.VendorVisitRecord, 0, len(records))
	for _, rec := range records {
		if rec.Category == vendorCategoryFilter && rec.SubCategory == vendorSubCategoryFilter {
			filtered = append(filtered, rec)
		}
	}

	order, groups := partitionVendor(filtered)

	visitors := make([]models.Visitor, 0, len(order))
	for _, requestID := range order {
		group := groups[requestID]
		visitor := MapVendorRecord(group[0])

		grouped := make([]models.GroupedVisit, 0, len(group))
		for _, rec := range group {
			grouped = append(grouped, models.GroupedVisit{
				VisitID:        rec.VisitID,
				VisitorName:    rec.VisitorName,
				PurposeOfVisit: rec.PurposeOfVisit,
				VisitDate:      rec.VisitDate,
			})
		}
		visitor.Vendor.GroupedVisitors = grouped
		visitors = append(visitors, visitor)
	}
	return visitors
}

// GroupFamilyVisits collapses family visit records that share a request_id
// into one Visitor per request. Family records are not filtered; the family
// API serves a single intake flow.
func GroupFamilyVisits(records []models.FamilyVisitRecord) []models.Visitor {
	order, groups := partitionFamily(records)

	visitors := make([]models.Visitor, 0, len(order))
	for _, requestID := range order {
		group := groups[requestID]
		visitor := MapFamilyRecord(group[0])

		grouped := make([]models.GroupedVisit, 0, len(group))
		for _, rec := range group {
			purpose := metaString(rec.MetadataJSON, "purpose")
			if purpose == "" {
				purpose = "Family visit"
			}
			grouped = append(grouped, models.GroupedVisit{
				VisitID:        rec.VisitID,
				VisitorName:    rec.VisitorName,
				PurposeOfVisit: purpose,
				VisitDate:      rec.RequestedAt,
				Relationship:   rec.Relationship,
				Gender:         rec.VisitorGender,
			})
		}
		visitor.Family.GroupedVisitors = grouped
		visitors = append(visitors, visitor)
	}
	return visitors
}

// partitionVendor splits records by request_id, keeping first-seen order of
// the keys. Map iteration order alone would shuffle the dashboard between
// refreshes.
func partitionVendor(records []models.VendorVisitRecord) ([]int, map[int][]models.VendorVisitRecord) {
	order := make([]int, 0, len(records))
	groups := make(map[int][]models.VendorVisitRecord, len(records))
	for _, rec := range records {
		if _, seen := groups[rec.RequestID]; !seen {
			order = append(order, rec.RequestID)
		}
		groups[rec.RequestID] = append(groups[rec.RequestID], rec)
	}
	return order, groups
}

func partitionFamily(records []models.FamilyVisitRecord) ([]int, map[int][]models.FamilyVisitRecord) {
	order := make([]int, 0, len(records))
	groups := make(map[int][]models.FamilyVisitRecord, len(records))
	for _, rec := range records {
		if _, seen := groups[rec.RequestID]; !seen {
			order = append(order, rec.RequestID)
		}
		groups[rec.RequestID] = append(groups[rec.RequestID], rec)
	}
	return order, groups
}
