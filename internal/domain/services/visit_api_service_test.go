package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(staff, vendor, family string) *VisitAPIService {
	return &VisitAPIService{
		StaffBaseURL:  staff,
		VendorBaseURL: vendor,
		FamilyBaseURL: family,
		Client:        &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchStatusCasing(t *testing.T) {
	var staffQuery, vendorQuery, familyQuery string

	staffSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffQuery = r.URL.Query().Get("status")
		io.WriteString(w, `{"status":"pending","count":0,"records":[]}`)
	}))
	defer staffSrv.Close()
	vendorSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorQuery = r.URL.Query().Get("status")
		io.WriteString(w, `{"status":"PENDING","count":0,"records":[]}`)
	}))
	defer vendorSrv.Close()
	familySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		familyQuery = r.URL.Query().Get("status")
		io.WriteString(w, `{"status":"PENDING","count":0,"records":[]}`)
	}))
	defer familySrv.Close()

	api := testClient(staffSrv.URL, vendorSrv.URL, familySrv.URL)
	ctx := context.Background()

	if _, err := api.FetchStaffRequests(ctx, "Pending"); err != nil {
		t.Fatalf("staff fetch: %v", err)
	}
	if _, err := api.FetchVendorVisits(ctx, "pending"); err != nil {
		t.Fatalf("vendor fetch: %v", err)
	}
	if _, err := api.FetchFamilyVisits(ctx, "pending"); err != nil {
		t.Fatalf("family fetch: %v", err)
	}

	// The staff API wants lowercase, the grouped APIs want uppercase
	if staffQuery != "pending" {
		t.Errorf("staff status query = %q, want pending", staffQuery)
	}
	if vendorQuery != "PENDING" {
		t.Errorf("vendor status query = %q, want PENDING", vendorQuery)
	}
	if familyQuery != "PENDING" {
		t.Errorf("family status query = %q, want PENDING", familyQuery)
	}
}

func TestFetchStaffRequestsDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"pending","count":1,"records":[{"id":7,"staff_name":"Anand Joshi"}]}`)
	}))
	defer srv.Close()

	api := testClient(srv.URL, "", "")
	resp, err := api.FetchStaffRequests(context.Background(), "pending")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if resp.Count != 1 || len(resp.Records) != 1 || resp.Records[0].ID != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestUpdateStaffApprovalBody(t *testing.T) {
	var method string
	var body map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := testClient(srv.URL, "", "")
	if err := api.UpdateStaffApproval(context.Background(), 7, ActionApprove); err != nil {
		t.Fatalf("update: %v", err)
	}

	if method != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", method)
	}
	if body["id"] != float64(7) {
		t.Errorf("body id = %v, want 7", body["id"])
	}
	if body["approval_status"] != "APPROVED" {
		t.Errorf("body approval_status = %v, want APPROVED", body["approval_status"])
	}
	if _, ok := body["request_id"]; ok {
		t.Error("staff decision body must not carry request_id")
	}
}

func TestUpdateVendorApprovalBody(t *testing.T) {
	var body map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := testClient("", srv.URL, "")
	if err := api.UpdateVendorApproval(context.Background(), 42, ActionReject); err != nil {
		t.Fatalf("update: %v", err)
	}

	if body["request_id"] != float64(42) {
		t.Errorf("body request_id = %v, want 42", body["request_id"])
	}
	if body["approval_status"] != "REJECTED" {
		t.Errorf("body approval_status = %v, want REJECTED", body["approval_status"])
	}
	if _, ok := body["id"]; ok {
		t.Error("vendor decision body must not carry a bare id")
	}
}

func TestUpdateFamilyApprovalBody(t *testing.T) {
	var body map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := testClient("", "", srv.URL)
	if err := api.UpdateFamilyApproval(context.Background(), 17, ActionApprove); err != nil {
		t.Fatalf("update: %v", err)
	}
	if body["request_id"] != float64(17) || body["approval_status"] != "APPROVED" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestUpdateApprovalErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, "request 42 is already settled")
	}))
	defer srv.Close()

	api := testClient("", srv.URL, "")
	err := api.UpdateVendorApproval(context.Background(), 42, ActionApprove)
	if err == nil {
		t.Fatal("want error on non-2xx response")
	}
	if !strings.Contains(err.Error(), "request 42 is already settled") {
		t.Errorf("error %q does not carry the upstream body", err)
	}
	if !strings.Contains(err.Error(), "approved") {
		t.Errorf("error %q does not name the attempted action", err)
	}
}

func TestFetchUnconfiguredBaseURL(t *testing.T) {
	api := testClient("", "", "")
	if _, err := api.FetchStaffRequests(context.Background(), "pending"); err == nil {
		t.Error("want error when base URL is not configured")
	}
}
