package services

import (
	"testing"

	"gateapp-http-service/internal/domain/models"
)

func vendorRecord(visitID, requestID int, name string) models.VendorVisitRecord {
	return models.VendorVisitRecord{
		VisitID:        visitID,
		RequestID:      requestID,
		Category:       "External",
		SubCategory:    "Vendor / Supplier",
		VendorName:     "Supply Co",
		VisitorName:    name,
		PurposeOfVisit: "Maintenance",
		VisitDate:      "2026-08-28T10:00:00Z",
	}
}

func TestGroupVendorVisits(t *testing.T) {
	records := []models.VendorVisitRecord{
		vendorRecord(21, 42, "Ravi Kumar"),
		vendorRecord(22, 42, "Sita Raman"),
		vendorRecord(30, 43, "Anil Mehta"),
		vendorRecord(23, 42, "Vijay Anand"),
	}

	visitors := GroupVendorVisits(records)

	if len(visitors) != 2 {
		t.Fatalf("got %d visitors, want one per request id", len(visitors))
	}

	first := visitors[0]
	if first.ID != "vendor-21" {
		t.Errorf("representative ID = %q, want first record of the group", first.ID)
	}
	if rid, ok := first.RequestID(); !ok || rid != 42 {
		t.Errorf("RequestID = %d,%v, want 42,true", rid, ok)
	}
	grouped := first.GroupedVisitors()
	if len(grouped) != 3 {
		t.Fatalf("group 42 has %d members, want 3", len(grouped))
	}
	names := []string{grouped[0].VisitorName, grouped[1].VisitorName, grouped[2].VisitorName}
	want := []string{"Ravi Kumar", "Sita Raman", "Vijay Anand"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("group member %d = %q, want %q", i, names[i], want[i])
		}
	}

	// First-seen order of request ids is preserved
	second := visitors[1]
	if rid, _ := second.RequestID(); rid != 43 {
		t.Errorf("second visitor request id = %d, want 43", rid)
	}
	if len(second.GroupedVisitors()) != 1 {
		t.Errorf("single-record group has %d members, want 1", len(second.GroupedVisitors()))
	}
}

func TestGroupVendorVisitsFiltersCategory(t *testing.T) {
	other := vendorRecord(99, 77, "Internal Person")
	other.SubCategory = "Internal Transfer"

	visitors := GroupVendorVisits([]models.VendorVisitRecord{
		other,
		vendorRecord(21, 42, "Ravi Kumar"),
	})

	if len(visitors) != 1 {
		t.Fatalf("got %d visitors, want records outside External/Vendor-Supplier dropped", len(visitors))
	}
	if rid, _ := visitors[0].RequestID(); rid != 42 {
		t.Errorf("surviving request id = %d, want 42", rid)
	}
}

func TestGroupVendorVisitsEmpty(t *testing.T) {
	if got := GroupVendorVisits(nil); len(got) != 0 {
		t.Errorf("got %d visitors from no records", len(got))
	}
}

func TestGroupFamilyVisits(t *testing.T) {
	records := []models.FamilyVisitRecord{
		{
			VisitID: 9, RequestID: 17, EmpID: 2002,
			VisitorName: "Lakshmi Iyer", VisitorGender: "Female", Relationship: "Mother",
			RequestedAt:  "2026-08-29T11:00:00Z",
			MetadataJSON: map[string]interface{}{"purpose": "Award ceremony"},
		},
		{
			VisitID: 10, RequestID: 17, EmpID: 2002,
			VisitorName: "Raghav Iyer", VisitorGender: "Male", Relationship: "Father",
			RequestedAt: "2026-08-29T11:00:00Z",
		},
	}

	visitors := GroupFamilyVisits(records)

	if len(visitors) != 1 {
		t.Fatalf("got %d visitors, want 1 per request id", len(visitors))
	}
	v := visitors[0]
	if v.ID != "family-9" {
		t.Errorf("ID = %q, want first record of the group", v.ID)
	}

	grouped := v.GroupedVisitors()
	if len(grouped) != 2 {
		t.Fatalf("group has %d members, want 2", len(grouped))
	}
	if grouped[0].Relationship != "Mother" || grouped[0].Gender != "Female" {
		t.Errorf("first member = %+v", grouped[0])
	}
	if grouped[0].PurposeOfVisit != "Award ceremony" {
		t.Errorf("first member purpose = %q, want metadata purpose", grouped[0].PurposeOfVisit)
	}
	if grouped[1].PurposeOfVisit != "Family visit" {
		t.Errorf("second member purpose = %q, want default", grouped[1].PurposeOfVisit)
	}
	if grouped[1].VisitDate != "2026-08-29T11:00:00Z" {
		t.Errorf("member visit date = %q, want requested_at", grouped[1].VisitDate)
	}
}

func TestGroupFamilyVisitsNoFilter(t *testing.T) {
	// The family API serves one flow; every record survives grouping
	records := []models.FamilyVisitRecord{
		{VisitID: 1, RequestID: 1, VisitorName: "A"},
		{VisitID: 2, RequestID: 2, VisitorName: "B"},
		{VisitID: 3, RequestID: 3, VisitorName: "C"},
	}
	if got := GroupFamilyVisits(records); len(got) != 3 {
		t.Errorf("got %d visitors, want 3", len(got))
	}
}
