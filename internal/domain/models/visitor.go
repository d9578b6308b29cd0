package models

// VisitorSource identifies where a visitor entry came from. Exactly one of the
// per-source metadata pointers on Visitor is set, selected by this tag.
type VisitorSource string

const (
	// SourceStaff - staff/contractor request API (keyed by record id)
	SourceStaff VisitorSource = "staff"
	// SourceVendor - vendor/supplier group visit API (keyed by request_id)
	SourceVendor VisitorSource = "vendor"
	// SourceFamily - employee-family visit API (keyed by request_id)
	SourceFamily VisitorSource = "family"
	// SourceDayLog - walk-in visitors logged at the security desk, in-memory only
	SourceDayLog VisitorSource = "daylog"
)

// VisitorCategory is the coarse visitor classification. Mapping from upstream
// free-text categories is total; unmatched text falls back to contractor.
type VisitorCategory string

const (
	CategoryContractor VisitorCategory = "contractor"
	CategoryVendor     VisitorCategory = "vendor"
	CategoryGuest      VisitorCategory = "guest"
	CategoryInterview  VisitorCategory = "interview"
	CategoryDelivery   VisitorCategory = "delivery"
)

// VisitorStatus is the visit lifecycle state
type VisitorStatus string

const (
	StatusScheduled  VisitorStatus = "scheduled"
	StatusCheckedIn  VisitorStatus = "checked-in"
	StatusCheckedOut VisitorStatus = "checked-out"
	// StatusRejected is a display-only state: it is never stored on a Visitor,
	// it is derived whenever any approval is rejected
	StatusRejected VisitorStatus = "rejected"
)

// ApprovalStatus is one approver's decision state
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Approval represents one approver's decision attached to a visitor
type Approval struct {
	ID           string         `json:"id"`
	ApproverName string         `json:"approver_name"`
	ApproverRole string         `json:"approver_role"`
	Status       ApprovalStatus `json:"status"`
	Timestamp    string         `json:"timestamp,omitempty"`
	Comments     string         `json:"comments,omitempty"`
}

// GroupedVisit is one individual's entry within a multi-person visit request.
// Relationship and Gender are populated for the family source only.
type GroupedVisit struct {
	VisitID        int    `json:"visit_id"`
	VisitorName    string `json:"visitor_name"`
	PurposeOfVisit string `json:"purpose_of_visit"`
	VisitDate      string `json:"visit_date"`
	Relationship   string `json:"relationship,omitempty"`
	Gender         string `json:"gender,omitempty"`
}

// StaffMeta carries staff-source passthrough fields
type StaffMeta struct {
	RecordID             int                    `json:"record_id"`
	EmpID                int                    `json:"emp_id"`
	AadharCard           string                 `json:"aadhar_card,omitempty"`
	BuildingNumber       string                 `json:"building_number,omitempty"`
	VisitDate            string                 `json:"visit_date,omitempty"`
	CreatedAt            string                 `json:"created_at,omitempty"`
	ApprovedAt           string                 `json:"approved_at,omitempty"`
	ApprovalStatus       string                 `json:"approval_status,omitempty"`
	DeliveryManagerEmail string                 `json:"delivery_manager_email,omitempty"`
	ApprovalEmail        string                 `json:"approval_email,omitempty"`
	OriginalCategory     string                 `json:"original_category,omitempty"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
}

// VendorMeta carries vendor-source passthrough fields and the grouped sub-visits
type VendorMeta struct {
	VisitID          int                    `json:"visit_id"`
	RequestID        int                    `json:"request_id"`
	EmpID            int                    `json:"emp_id"`
	VendorName       string                 `json:"vendor_name,omitempty"`
	VendorAddress    string                 `json:"vendor_address,omitempty"`
	CompanyContact   string                 `json:"company_contact,omitempty"`
	Document         string                 `json:"document,omitempty"`
	VisitDate        string                 `json:"visit_date,omitempty"`
	CreatedAt        string                 `json:"created_at,omitempty"`
	RequestedAt      string                 `json:"requested_at,omitempty"`
	ApprovedAt       string                 `json:"approved_at,omitempty"`
	ApprovalStatus   string                 `json:"approval_status,omitempty"`
	OriginalCategory string                 `json:"original_category,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	GroupedVisitors  []GroupedVisit         `json:"grouped_visitors,omitempty"`
}

// FamilyMeta carries family-source passthrough fields and the grouped sub-visits
type FamilyMeta struct {
	VisitID         int                    `json:"visit_id"`
	RequestID       int                    `json:"request_id"`
	EmpID           int                    `json:"emp_id"`
	Gender          string                 `json:"gender,omitempty"`
	Relationship    string                 `json:"relationship,omitempty"`
	VisitDate       string                 `json:"visit_date,omitempty"`
	CreatedAt       string                 `json:"created_at,omitempty"`
	RequestedAt     string                 `json:"requested_at,omitempty"`
	ApprovedAt      string                 `json:"approved_at,omitempty"`
	ApprovalStatus  string                 `json:"approval_status,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	GroupedVisitors []GroupedVisit         `json:"grouped_visitors,omitempty"`
}

// Visitor is the canonical representation every upstream record type is
// translated into. Time fields are ISO 8601 strings as delivered by the
// upstream APIs; they are carried through, not reinterpreted.
type Visitor struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Category       VisitorCategory `json:"category"`
	Subcategory    string          `json:"subcategory,omitempty"`
	PurposeOfVisit string          `json:"purpose_of_visit"`
	HostName       string          `json:"host_name"`
	HostDepartment string          `json:"host_department"`
	CheckInTime    string          `json:"check_in_time"`
	CheckOutTime   string          `json:"check_out_time,omitempty"`
	AccessEndTime  string          `json:"access_end_time,omitempty"`
	Photo          string          `json:"photo,omitempty"`
	Status         VisitorStatus   `json:"status"`
	Approvals      []Approval      `json:"approvals"`

	Source VisitorSource `json:"source"`
	Staff  *StaffMeta    `json:"staff,omitempty"`
	Vendor *VendorMeta   `json:"vendor,omitempty"`
	Family *FamilyMeta   `json:"family,omitempty"`
}

// HasRejectedApproval reports whether any approval on the visitor is rejected
func (v *Visitor) HasRejectedApproval() bool {
	for _, a := range v.Approvals {
		if a.Status == ApprovalRejected {
			return true
		}
	}
	return false
}

// DisplayStatus returns the status to render. A rejected approval overrides
// the stored lifecycle status everywhere status is shown or reasoned about.
func (v *Visitor) DisplayStatus() VisitorStatus {
	if v.HasRejectedApproval() {
		return StatusRejected
	}
	return v.Status
}

// GroupedVisitors returns the embedded sub-visit list for grouped sources,
// nil for staff and day-log visitors
func (v *Visitor) GroupedVisitors() []GroupedVisit {
	switch v.Source {
	case SourceVendor:
		if v.Vendor != nil {
			return v.Vendor.GroupedVisitors
		}
	case SourceFamily:
		if v.Family != nil {
			return v.Family.GroupedVisitors
		}
	}
	return nil
}

// RequestID returns the shared request identifier for grouped sources.
// ok is false for sources that are not keyed by request_id.
func (v *Visitor) RequestID() (int, bool) {
	switch v.Source {
	case SourceVendor:
		if v.Vendor != nil && v.Vendor.RequestID != 0 {
			return v.Vendor.RequestID, true
		}
	case SourceFamily:
		if v.Family != nil && v.Family.RequestID != 0 {
			return v.Family.RequestID, true
		}
	}
	return 0, false
}

// OriginalID returns the staff source's native record id.
// ok is false for every other source.
func (v *Visitor) OriginalID() (int, bool) {
	if v.Source == SourceStaff && v.Staff != nil && v.Staff.RecordID != 0 {
		return v.Staff.RecordID, true
	}
	return 0, false
}

// OriginalCategory returns the upstream free-text category when the source
// carried one, falling back to the canonical category
func (v *Visitor) OriginalCategory() string {
	switch v.Source {
	case SourceStaff:
		if v.Staff != nil && v.Staff.OriginalCategory != "" {
			return v.Staff.OriginalCategory
		}
	case SourceVendor:
		if v.Vendor != nil && v.Vendor.OriginalCategory != "" {
			return v.Vendor.OriginalCategory
		}
	case SourceFamily:
		return "Family Visit"
	}
	return string(v.Category)
}
