package services

import (
	"strconv"
	"strings"
	"time"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/pkg/utils"
)

// MapCategory normalizes an upstream free-text category into the canonical
// set. Rules are checked in order; anything unmatched is a contractor, so the
// mapping is total.
func MapCategory(category string) models.VisitorCategory {
	lower := strings.ToLower(category)
	if strings.Contains(lower, "contractor") || strings.Contains(lower, "external") {
		return models.CategoryContractor
	}
	if strings.Contains(lower, "vendor") {
		return models.CategoryVendor
	}
	if strings.Contains(lower, "guest") {
		return models.CategoryGuest
	}
	if strings.Contains(lower, "interview") {
		return models.CategoryInterview
	}
	if strings.Contains(lower, "delivery") {
		return models.CategoryDelivery
	}
	if strings.Contains(lower, "it services") || strings.Contains(lower, "services") {
		return models.CategoryVendor
	}
	return models.CategoryContractor
}

// approvalState folds an upstream approval_status into the two states the
// dashboard synthesizes. Rejection is never synthesized from upstream text;
// it only appears through an explicit reject decision.
func approvalState(raw string) models.ApprovalStatus {
	if strings.ToLower(raw) == "approved" {
		return models.ApprovalApproved
	}
	return models.ApprovalPending
}

// MapStaffRecord translates one staff/contractor API record into a Visitor
func MapStaffRecord(rec models.StaffRecord) models.Visitor {
	state := approvalState(rec.ApprovalStatus)

	approvals := []models.Approval{
		{
			ID:           "pending-" + strconv.Itoa(rec.ID),
			ApproverName: utils.EmailLocalPart(rec.DeliveryManagerEmail, "Manager"),
			ApproverRole: "Delivery Manager",
			Status:       state,
			Timestamp:    rec.CreatedAt,
		},
	}
	if rec.ApprovalEmail != "" {
		ts := rec.ApprovedAt
		if ts == "" {
			ts = rec.CreatedAt
		}
		approvals = append(approvals, models.Approval{
			ID:           "approval-" + strconv.Itoa(rec.ID),
			ApproverName: utils.EmailLocalPart(rec.ApprovalEmail, "Approver"),
			ApproverRole: "Approver",
			Status:       state,
			Timestamp:    ts,
		})
	}

	email := rec.InfyEmail
	if email == "" {
		email = rec.DeliveryManagerEmail
	}

	purpose := metaString(rec.MetadataJSON, "project")
	if purpose == "" {
		purpose = "Visit to " + rec.BuildingNumber
	}

	checkIn := nowISO()
	accessEnd := ""
	if rec.VisitDate != "" {
		// The staff API delivers a bare date; office hours bound the window.
		checkIn = rec.VisitDate + "T09:00:00"
		accessEnd = rec.VisitDate + "T17:00:00"
	}

	hostDept := rec.BuildingNumber
	if hostDept == "" {
		hostDept = "N/A"
	}

	return models.Visitor{
		ID:             "api-" + strconv.Itoa(rec.ID),
		Name:           rec.StaffName,
		Email:          email,
		Phone:          rec.PhoneNumber,
		Company:        rec.ConsultancyName,
		Category:       MapCategory(rec.Category),
		Subcategory:    rec.SubCategory,
		PurposeOfVisit: purpose,
		HostName:       utils.EmailLocalPart(rec.DeliveryManagerEmail, "Manager"),
		HostDepartment: hostDept,
		CheckInTime:    checkIn,
		AccessEndTime:  accessEnd,
		Status:         models.StatusScheduled,
		Approvals:      approvals,
		Source:         models.SourceStaff,
		Staff: &models.StaffMeta{
			RecordID:             rec.ID,
			EmpID:                rec.EmpID,
			AadharCard:           rec.AadharCard,
			BuildingNumber:       rec.BuildingNumber,
			VisitDate:            rec.VisitDate,
			CreatedAt:            rec.CreatedAt,
			ApprovedAt:           rec.ApprovedAt,
			ApprovalStatus:       rec.ApprovalStatus,
			DeliveryManagerEmail: rec.DeliveryManagerEmail,
			ApprovalEmail:        rec.ApprovalEmail,
			OriginalCategory:     rec.Category,
			Metadata:             rec.MetadataJSON,
		},
	}
}

// MapVendorRecord translates one vendor visit record into a Visitor.
// Grouping by request_id is layered on top by the grouping engine; this
// function maps a single record as-is.
func MapVendorRecord(rec models.VendorVisitRecord) models.Visitor {
	state := approvalState(rec.ApprovalStatus)

	email := rec.CompanyContact
	if !strings.Contains(email, "@") {
		email = utils.SyntheticEmail(rec.VisitorName, "vendor.com")
	}

	hostDept := rec.VendorAddress
	if hostDept == "" {
		hostDept = "N/A"
	}

	checkIn, accessEnd := visitWindow(rec.VisitDate, 8*time.Hour)

	return models.Visitor{
		ID:             "vendor-" + strconv.Itoa(rec.VisitID),
		Name:           rec.VisitorName,
		Email:          email,
		Phone:          rec.CompanyContact,
		Company:        rec.VendorName,
		Category:       MapCategory(rec.Category),
		Subcategory:    rec.SubCategory,
		PurposeOfVisit: rec.PurposeOfVisit,
		HostName:       "Manager",
		HostDepartment: hostDept,
		CheckInTime:    checkIn,
		AccessEndTime:  accessEnd,
		Status:         models.StatusScheduled,
		Approvals: []models.Approval{
			{
				ID:           "vendor-pending-" + strconv.Itoa(rec.VisitID),
				ApproverName: "Manager",
				ApproverRole: "Manager",
				Status:       state,
				Timestamp:    rec.CreatedAt,
			},
		},
		Source: models.SourceVendor,
		Vendor: &models.VendorMeta{
			VisitID:          rec.VisitID,
			RequestID:        rec.RequestID,
			EmpID:            rec.EmpID,
			VendorName:       rec.VendorName,
			VendorAddress:    rec.VendorAddress,
			CompanyContact:   rec.CompanyContact,
			Document:         rec.Document,
			VisitDate:        rec.VisitDate,
			CreatedAt:        rec.CreatedAt,
			RequestedAt:      rec.RequestedAt,
			ApprovedAt:       rec.ApprovedAt,
			ApprovalStatus:   rec.ApprovalStatus,
			OriginalCategory: rec.Category,
			Metadata:         rec.Metadata,
		},
	}
}

// MapFamilyRecord translates one family visit record into a Visitor.
// Family visits are always guests; there is no upstream category to map.
func MapFamilyRecord(rec models.FamilyVisitRecord) models.Visitor {
	state := approvalState(rec.ApprovalStatus)

	purpose := metaString(rec.MetadataJSON, "purpose")
	if purpose == "" {
		purpose = "Family visit"
	}

	checkIn, accessEnd := visitWindow(rec.RequestedAt, 4*time.Hour)

	return models.Visitor{
		ID:             "family-" + strconv.Itoa(rec.VisitID),
		Name:           rec.VisitorName,
		Email:          utils.SyntheticEmail(rec.VisitorName, "family.com"),
		Phone:          "N/A",
		Company:        "Family Visit",
		Category:       models.CategoryGuest,
		Subcategory:    rec.Relationship,
		PurposeOfVisit: purpose,
		HostName:       "Employee " + strconv.Itoa(rec.EmpID),
		HostDepartment: "Family",
		CheckInTime:    checkIn,
		AccessEndTime:  accessEnd,
		Status:         models.StatusScheduled,
		Approvals: []models.Approval{
			{
				ID:           "family-pending-" + strconv.Itoa(rec.VisitID),
				ApproverName: "Manager",
				ApproverRole: "Manager",
				Status:       state,
				Timestamp:    rec.CreatedAt,
			},
		},
		Source: models.SourceFamily,
		Family: &models.FamilyMeta{
			VisitID:        rec.VisitID,
			RequestID:      rec.RequestID,
			EmpID:          rec.EmpID,
			Gender:         rec.VisitorGender,
			Relationship:   rec.Relationship,
			VisitDate:      rec.RequestedAt,
			CreatedAt:      rec.CreatedAt,
			RequestedAt:    rec.RequestedAt,
			ApprovedAt:     rec.ApprovedAt,
			ApprovalStatus: rec.ApprovalStatus,
			Metadata:       rec.MetadataJSON,
		},
	}
}

// visitWindow derives the check-in time and the access end from an upstream
// timestamp. A missing timestamp means check-in now with an open window; an
// unparseable one is carried through untouched.
func visitWindow(raw string, span time.Duration) (checkIn, accessEnd string) {
	if raw == "" {
		return nowISO(), ""
	}
	t, ok := parseUpstreamTime(raw)
	if !ok {
		return raw, ""
	}
	return t.UTC().Format(time.RFC3339), t.Add(span).UTC().Format(time.RFC3339)
}

// parseUpstreamTime accepts the timestamp shapes the upstream APIs emit
func parseUpstreamTime(raw string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// metaString pulls a string value out of a freeform metadata object
func metaString(meta map[string]interface{}, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
