package models

import "testing"

func TestDisplayStatusRejectedOverride(t *testing.T) {
	tests := []struct {
		name      string
		status    VisitorStatus
		approvals []Approval
		want      VisitorStatus
	}{
		{
			"no approvals keeps stored status",
			StatusScheduled, nil, StatusScheduled,
		},
		{
			"pending approvals keep stored status",
			StatusScheduled,
			[]Approval{{Status: ApprovalPending}, {Status: ApprovalApproved}},
			StatusScheduled,
		},
		{
			"one rejection overrides scheduled",
			StatusScheduled,
			[]Approval{{Status: ApprovalApproved}, {Status: ApprovalRejected}},
			StatusRejected,
		},
		{
			"rejection overrides checked-in too",
			StatusCheckedIn,
			[]Approval{{Status: ApprovalRejected}},
			StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Visitor{Status: tt.status, Approvals: tt.approvals}
			if got := v.DisplayStatus(); got != tt.want {
				t.Errorf("DisplayStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestIDPerSource(t *testing.T) {
	vendor := Visitor{Source: SourceVendor, Vendor: &VendorMeta{RequestID: 42}}
	if id, ok := vendor.RequestID(); !ok || id != 42 {
		t.Errorf("vendor RequestID = %d,%v", id, ok)
	}

	family := Visitor{Source: SourceFamily, Family: &FamilyMeta{RequestID: 17}}
	if id, ok := family.RequestID(); !ok || id != 17 {
		t.Errorf("family RequestID = %d,%v", id, ok)
	}

	staff := Visitor{Source: SourceStaff, Staff: &StaffMeta{RecordID: 7}}
	if _, ok := staff.RequestID(); ok {
		t.Error("staff visitors must not expose a request id")
	}
	if id, ok := staff.OriginalID(); !ok || id != 7 {
		t.Errorf("staff OriginalID = %d,%v", id, ok)
	}

	daylog := Visitor{Source: SourceDayLog}
	if _, ok := daylog.RequestID(); ok {
		t.Error("day-log visitors must not expose a request id")
	}
	if _, ok := daylog.OriginalID(); ok {
		t.Error("day-log visitors must not expose an original id")
	}
}

func TestGroupedVisitorsPerSource(t *testing.T) {
	group := []GroupedVisit{{VisitID: 1, VisitorName: "A"}}

	vendor := Visitor{Source: SourceVendor, Vendor: &VendorMeta{GroupedVisitors: group}}
	if len(vendor.GroupedVisitors()) != 1 {
		t.Error("vendor grouped visitors not exposed")
	}

	staff := Visitor{Source: SourceStaff, Staff: &StaffMeta{}}
	if staff.GroupedVisitors() != nil {
		t.Error("staff visitors must not have grouped visitors")
	}
}

func TestOriginalCategory(t *testing.T) {
	staff := Visitor{
		Source:   SourceStaff,
		Category: CategoryContractor,
		Staff:    &StaffMeta{OriginalCategory: "External"},
	}
	if got := staff.OriginalCategory(); got != "External" {
		t.Errorf("staff original category = %q", got)
	}

	family := Visitor{Source: SourceFamily, Category: CategoryGuest, Family: &FamilyMeta{}}
	if got := family.OriginalCategory(); got != "Family Visit" {
		t.Errorf("family original category = %q", got)
	}

	bare := Visitor{Source: SourceDayLog, Category: CategoryGuest}
	if got := bare.OriginalCategory(); got != "guest" {
		t.Errorf("fallback original category = %q", got)
	}
}
