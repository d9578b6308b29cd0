package models

// Upstream wire shapes for the three visit request APIs. Field sets are fixed
// by the upstream contract; absent optionals decode to zero values.

// StaffRecord is one row from the staff/contractor request API
type StaffRecord struct {
	ID                   int                    `json:"id"`
	EmpID                int                    `json:"emp_id"`
	StaffName            string                 `json:"staff_name"`
	ConsultancyName      string                 `json:"consultancy_name"`
	Category             string                 `json:"category"`
	SubCategory          string                 `json:"sub_category"`
	DeliveryManagerEmail string                 `json:"delivery_manager_emailid"`
	ApprovalEmail        string                 `json:"approval_email"`
	PhoneNumber          string                 `json:"phone_number"`
	InfyEmail            string                 `json:"infy_email"`
	AadharCard           string                 `json:"aadhar_card"`
	MetadataJSON         map[string]interface{} `json:"metadata_json"`
	VisitDate            string                 `json:"visit_date"`
	BuildingNumber       string                 `json:"building_number"`
	CreatedAt            string                 `json:"created_at"`
	ApprovedAt           string                 `json:"approved_at"`
	ApprovalStatus       string                 `json:"approval_status"`
}

// VendorVisitRecord is one row from the vendor/supplier visit API.
// Multiple rows may share a request_id; they form one logical visit request.
type VendorVisitRecord struct {
	VisitID        int                    `json:"visit_id"`
	RequestID      int                    `json:"request_id"`
	EmpID          int                    `json:"emp_id"`
	Category       string                 `json:"category"`
	SubCategory    string                 `json:"sub_category"`
	VendorName     string                 `json:"vendor_name"`
	VendorAddress  string                 `json:"vendor_address"`
	CompanyContact string                 `json:"company_contact"`
	VisitorName    string                 `json:"visitor_name"`
	PurposeOfVisit string                 `json:"purpose_of_visit"`
	Document       string                 `json:"document"`
	VisitDate      string                 `json:"visit_date"`
	Metadata       map[string]interface{} `json:"metadata"`
	ApprovalStatus string                 `json:"approval_status"`
	CreatedAt      string                 `json:"created_at"`
	RequestedAt    string                 `json:"requested_at"`
	ApprovedAt     string                 `json:"approved_at"`
}

// FamilyVisitRecord is one row from the employee-family visit API.
// Multiple rows may share a request_id; they form one logical visit request.
type FamilyVisitRecord struct {
	VisitID        int                    `json:"visit_id"`
	RequestID      int                    `json:"request_id"`
	EmpID          int                    `json:"emp_id"`
	VisitorName    string                 `json:"visitor_name"`
	VisitorGender  string                 `json:"visitor_gender"`
	Relationship   string                 `json:"visitor_relationship"`
	MetadataJSON   map[string]interface{} `json:"metadata_json"`
	ApprovalStatus string                 `json:"approval_status"`
	CreatedAt      string                 `json:"created_at"`
	RequestedAt    string                 `json:"requested_at"`
	ApprovedAt     string                 `json:"approved_at"`
}

// StaffResponse is the staff API list envelope
type StaffResponse struct {
	Status  string        `json:"status"`
	Count   int           `json:"count"`
	Records []StaffRecord `json:"records"`
}

// VendorResponse is the vendor API list envelope
type VendorResponse struct {
	Status  string              `json:"status"`
	Count   int                 `json:"count"`
	Records []VendorVisitRecord `json:"records"`
}

// FamilyResponse is the family API list envelope
type FamilyResponse struct {
	Status  string              `json:"status"`
	Count   int                 `json:"count"`
	Records []FamilyVisitRecord `json:"records"`
}
