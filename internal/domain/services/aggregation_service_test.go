package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateapp-http-service/internal/domain/models"
)

const (
	staffPendingJSON = `{"status":"pending","count":1,"records":[
		{"id":7,"staff_name":"Anand Joshi","delivery_manager_emailid":"dm@example.com","category":"External"}]}`
	vendorPendingJSON = `{"status":"PENDING","count":3,"records":[
		{"visit_id":21,"request_id":42,"category":"External","sub_category":"Vendor / Supplier","visitor_name":"Ravi Kumar","company_contact":"044-111"},
		{"visit_id":22,"request_id":42,"category":"External","sub_category":"Vendor / Supplier","visitor_name":"Sita Raman","company_contact":"044-111"},
		{"visit_id":30,"request_id":43,"category":"External","sub_category":"Vendor / Supplier","visitor_name":"Anil Mehta","company_contact":"044-222"}]}`
	familyPendingJSON = `{"status":"PENDING","count":1,"records":[
		{"visit_id":9,"request_id":17,"emp_id":2002,"visitor_name":"Lakshmi Iyer","visitor_relationship":"Mother"}]}`
	emptyJSON = `{"status":"pending","count":0,"records":[]}`
)

func staticServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAggregation(staffURL, vendorURL, familyURL string) InterfaceAggregationService {
	return NewAggregationService(&VisitAPIService{
		StaffBaseURL:  staffURL,
		VendorBaseURL: vendorURL,
		FamilyBaseURL: familyURL,
		Client:        &http.Client{Timeout: 5 * time.Second},
	})
}

func TestFetchVisitorsMergeOrder(t *testing.T) {
	agg := newAggregation(
		staticServer(t, staffPendingJSON).URL,
		staticServer(t, vendorPendingJSON).URL,
		staticServer(t, familyPendingJSON).URL,
	)

	visitors, err := agg.FetchVisitors(context.Background(), "pending")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	// 1 staff + 2 vendor groups + 1 family group
	if len(visitors) != 4 {
		t.Fatalf("got %d visitors, want 4", len(visitors))
	}

	wantSources := []models.VisitorSource{
		models.SourceStaff, models.SourceVendor, models.SourceVendor, models.SourceFamily,
	}
	for i, want := range wantSources {
		if visitors[i].Source != want {
			t.Errorf("visitor %d source = %q, want %q", i, visitors[i].Source, want)
		}
	}
	if visitors[0].ID != "api-7" || visitors[1].ID != "vendor-21" || visitors[3].ID != "family-9" {
		t.Errorf("unexpected ids: %s, %s, %s, %s",
			visitors[0].ID, visitors[1].ID, visitors[2].ID, visitors[3].ID)
	}
	if len(visitors[1].GroupedVisitors()) != 2 {
		t.Errorf("vendor group 42 has %d members, want 2", len(visitors[1].GroupedVisitors()))
	}
}

func TestFetchVisitorsSurvivesSourceOutage(t *testing.T) {
	agg := newAggregation(
		failingServer(t).URL,
		staticServer(t, vendorPendingJSON).URL,
		staticServer(t, familyPendingJSON).URL,
	)

	visitors, err := agg.FetchVisitors(context.Background(), "pending")
	if err != nil {
		t.Fatalf("a single source outage must not fail the view: %v", err)
	}
	if len(visitors) != 3 {
		t.Fatalf("got %d visitors, want the two healthy sources' 3", len(visitors))
	}
	for _, v := range visitors {
		if v.Source == models.SourceStaff {
			t.Errorf("staff visitor %s present despite outage", v.ID)
		}
	}
}

func TestFetchVisitorsAllSourcesDown(t *testing.T) {
	down := failingServer(t).URL
	agg := newAggregation(down, down, down)

	visitors, err := agg.FetchVisitors(context.Background(), "pending")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(visitors) != 0 {
		t.Errorf("got %d visitors with every source down", len(visitors))
	}
}

func TestSummaryCountsRequestsNotRows(t *testing.T) {
	// Pending: 1 staff + vendor request ids {42,43} + family request id {17} = 4.
	// Approved: everything empty.
	pendingOnly := func(pending string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			status := r.URL.Query().Get("status")
			if status == "pending" || status == "PENDING" {
				io.WriteString(w, pending)
				return
			}
			io.WriteString(w, emptyJSON)
		}
	}

	staffSrv := httptest.NewServer(pendingOnly(staffPendingJSON))
	defer staffSrv.Close()
	vendorSrv := httptest.NewServer(pendingOnly(vendorPendingJSON))
	defer vendorSrv.Close()
	familySrv := httptest.NewServer(pendingOnly(familyPendingJSON))
	defer familySrv.Close()

	agg := newAggregation(staffSrv.URL, vendorSrv.URL, familySrv.URL)

	summary, err := agg.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Pending != 4 {
		t.Errorf("pending = %d, want 4 (vendor rows collapse per request id)", summary.Pending)
	}
	if summary.Approved != 0 {
		t.Errorf("approved = %d, want 0", summary.Approved)
	}
	if summary.Total != 4 {
		t.Errorf("total = %d, want pending + approved", summary.Total)
	}
}
