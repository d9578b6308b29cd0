package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/pkg/logger"
)

// FilterAll is the sentinel that disables a filter dimension
const FilterAll = "all"

// Sentinel errors surfaced by the view service
var (
	ErrVisitorNotFound   = errors.New("visitor not found")
	ErrDecisionTarget    = errors.New("visit request is missing the id its source writes by")
	ErrAlreadyCheckedOut = errors.New("visitor already checked out")
	ErrUnsupportedAction = errors.New("unsupported decision action")
)

// VisitorFilter selects a slice of the visitor collection. Zero values and
// FilterAll both mean "no constraint" for their dimension.
type VisitorFilter struct {
	Search      string
	Category    string
	Status      string
	Subcategory string
}

// Matches reports whether a visitor passes the filter. The status dimension
// compares against the display status, so a rejected approval hides the
// visitor from the scheduled view just like it does on screen.
func (f VisitorFilter) Matches(v *models.Visitor) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.Name), needle) &&
			!strings.Contains(strings.ToLower(v.Company), needle) &&
			!strings.Contains(strings.ToLower(v.HostName), needle) &&
			!strings.Contains(strings.ToLower(v.PurposeOfVisit), needle) {
			return false
		}
	}
	if f.Category != "" && f.Category != FilterAll && string(v.Category) != f.Category {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(v.DisplayStatus()) != f.Status {
		return false
	}
	if f.Subcategory != "" && !strings.EqualFold(f.Subcategory, FilterAll) &&
		!strings.EqualFold(v.Subcategory, f.Subcategory) {
		return false
	}
	return true
}

// InterfaceVisitorViewService drives the dashboard view: listing and
// filtering the aggregated collection, dispatching approval decisions, and
// the security desk's in-memory day log.
type InterfaceVisitorViewService interface {
	ListVisitors(ctx context.Context, status string, filter VisitorFilter) ([]models.Visitor, error)
	FindVisitor(ctx context.Context, id string) (*models.Visitor, error)
	Decide(ctx context.Context, visitorID string, action DecisionAction, operator string, operatorID uint) ([]models.Visitor, error)
	DayLog(date string) []models.Visitor
	Checkout(date, visitorID string) (*models.Visitor, error)
}

// VisitorViewService implements InterfaceVisitorViewService
type VisitorViewService struct {
	agg    InterfaceAggregationService
	api    InterfaceVisitAPIService
	events InterfaceGateEventService
	db     *gorm.DB

	mu         sync.Mutex
	collection map[string][]models.Visitor // last fetched visitors per status tab
	dayLogs    map[string][]models.Visitor
}

// NewVisitorViewService creates a VisitorViewService. db may be nil, which
// disables decision auditing; events may be nil, which disables gate events.
func NewVisitorViewService(agg InterfaceAggregationService, api InterfaceVisitAPIService, events InterfaceGateEventService, db *gorm.DB) InterfaceVisitorViewService {
	return &VisitorViewService{
		agg:        agg,
		api:        api,
		events:     events,
		db:         db,
		collection: make(map[string][]models.Visitor),
		dayLogs:    make(map[string][]models.Visitor),
	}
}

// refresh re-fetches one status tab and replaces the held collection
func (s *VisitorViewService) refresh(ctx context.Context, status string) ([]models.Visitor, error) {
	visitors, err := s.agg.FetchVisitors(ctx, status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.collection[status] = visitors
	s.mu.Unlock()
	return visitors, nil
}

// ListVisitors fetches the aggregated collection for a status tab and applies
// the filter. The fetch always goes upstream so the view never serves a stale
// approval state; filters are applied to the held collection.
func (s *VisitorViewService) ListVisitors(ctx context.Context, status string, filter VisitorFilter) ([]models.Visitor, error) {
	visitors, err := s.refresh(ctx, status)
	if err != nil {
		return nil, err
	}
	return FilterVisitors(visitors, filter), nil
}

// FilterVisitors applies a filter to a visitor slice
func FilterVisitors(visitors []models.Visitor, filter VisitorFilter) []models.Visitor {
	filtered := make([]models.Visitor, 0, len(visitors))
	for i := range visitors {
		if filter.Matches(&visitors[i]) {
			filtered = append(filtered, visitors[i])
		}
	}
	return filtered
}

// FindVisitor locates a visitor by canonical id. The held collection is
// consulted first so a decision on a just-listed visitor needs no extra
// upstream round trip; a cache miss re-fetches pending, then approved.
func (s *VisitorViewService) FindVisitor(ctx context.Context, id string) (*models.Visitor, error) {
	s.mu.Lock()
	for _, visitors := range s.collection {
		for i := range visitors {
			if visitors[i].ID == id {
				found := visitors[i]
				s.mu.Unlock()
				return &found, nil
			}
		}
	}
	s.mu.Unlock()

	for _, status := range []string{"pending", "approved"} {
		visitors, err := s.refresh(ctx, status)
		if err != nil {
			return nil, err
		}
		for i := range visitors {
			if visitors[i].ID == id {
				return &visitors[i], nil
			}
		}
	}
	return nil, ErrVisitorNotFound
}

// Decide dispatches an approval decision to the visitor's source API and
// returns the reloaded pending collection. The write target depends on the
// source: staff requests are keyed by record id, vendor and family requests
// by their shared request id, so a vendor or family decision settles the
// whole group at once. A visitor whose source id is missing fails before any
// network call, and a failed write leaves the collection untouched.
func (s *VisitorViewService) Decide(ctx context.Context, visitorID string, action DecisionAction, operator string, operatorID uint) ([]models.Visitor, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrUnsupportedAction
	}

	visitor, err := s.FindVisitor(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	var targetID int
	var write func(context.Context, int, DecisionAction) error
	switch visitor.Source {
	case models.SourceStaff:
		id, ok := visitor.OriginalID()
		if !ok {
			return nil, ErrDecisionTarget
		}
		targetID, write = id, s.api.UpdateStaffApproval
	case models.SourceVendor:
		id, ok := visitor.RequestID()
		if !ok {
			return nil, ErrDecisionTarget
		}
		targetID, write = id, s.api.UpdateVendorApproval
	case models.SourceFamily:
		id, ok := visitor.RequestID()
		if !ok {
			return nil, ErrDecisionTarget
		}
		targetID, write = id, s.api.UpdateFamilyApproval
	default:
		return nil, ErrDecisionTarget
	}

	writeErr := write(ctx, targetID, action)
	s.audit(visitor, targetID, action, operatorID, writeErr)
	if writeErr != nil {
		return nil, writeErr
	}

	if s.events != nil {
		s.events.PublishDecision(visitor.ID, visitor.Source, action, operator)
	}

	return s.refresh(ctx, "pending")
}

// audit records the decision attempt. Audit failures are logged, never
// propagated; losing an audit row must not undo a decision.
func (s *VisitorViewService) audit(visitor *models.Visitor, targetID int, action DecisionAction, operatorID uint, writeErr error) {
	if s.db == nil {
		return
	}

	entry := models.DecisionLog{
		VisitorID: visitor.ID,
		Source:    visitor.Source,
		TargetID:  targetID,
		Action:    string(action),
		UserID:    operatorID,
		Timestamp: time.Now().UTC(),
		Success:   writeErr == nil,
	}
	if writeErr != nil {
		entry.Details = writeErr.Error()
	}

	if err := s.db.Create(&entry).Error; err != nil {
		logger.Error("failed to record decision log for %s: %v", visitor.ID, err)
	}
}

// DayLog returns the security desk's visitor log for a calendar date
// (YYYY-MM-DD). The log is seeded per date on first access and lives in
// memory only; it resets on restart.
func (s *VisitorViewService) DayLog(date string) []models.Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dayLogs[date]; !ok {
		s.dayLogs[date] = seedDayLog(date)
	}

	out := make([]models.Visitor, len(s.dayLogs[date]))
	copy(out, s.dayLogs[date])
	return out
}

// Checkout marks a day-log visitor as checked out and stamps the time
func (s *VisitorViewService) Checkout(date, visitorID string) (*models.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.dayLogs[date]
	if !ok {
		return nil, ErrVisitorNotFound
	}
	for i := range log {
		if log[i].ID != visitorID {
			continue
		}
		if log[i].Status == models.StatusCheckedOut {
			return nil, ErrAlreadyCheckedOut
		}
		log[i].Status = models.StatusCheckedOut
		log[i].CheckOutTime = time.Now().UTC().Format(time.RFC3339)
		if s.events != nil {
			s.events.PublishCheckout(visitorID, date)
		}
		result := log[i]
		return &result, nil
	}
	return nil, ErrVisitorNotFound
}

// seedDayLog fabricates the walk-in log for a date. Entries are stable for a
// given date so repeated reads agree.
func seedDayLog(date string) []models.Visitor {
	entries := []struct {
		name     string
		company  string
		category models.VisitorCategory
		purpose  string
		host     string
		dept     string
		checkIn  string
		status   models.VisitorStatus
	}{
		{"Rajesh Kumar", "TechCorp Solutions", models.CategoryVendor, "Network maintenance", "Anita Desai", "IT Operations", "T08:30:00", models.StatusCheckedIn},
		{"Priya Sharma", "Elite Staffing", models.CategoryInterview, "Software engineer interview", "Vikram Rao", "Engineering", "T10:00:00", models.StatusCheckedIn},
		{"Suresh Menon", "QuickShip Couriers", models.CategoryDelivery, "Document delivery", "Front Desk", "Reception", "T11:15:00", models.StatusCheckedOut},
		{"Meena Pillai", "Independent", models.CategoryGuest, "Campus tour", "Arjun Nair", "Facilities", "T14:00:00", models.StatusScheduled},
	}

	visitors := make([]models.Visitor, 0, len(entries))
	for i, e := range entries {
		v := models.Visitor{
			ID:             "daylog-" + date + "-" + strconv.Itoa(i+1),
			Name:           e.name,
			Email:          strings.Replace(strings.ToLower(e.name), " ", ".", 1) + "@visitor.local",
			Phone:          "N/A",
			Company:        e.company,
			Category:       e.category,
			PurposeOfVisit: e.purpose,
			HostName:       e.host,
			HostDepartment: e.dept,
			CheckInTime:    date + e.checkIn,
			Status:         e.status,
			Approvals:      []models.Approval{},
			Source:         models.SourceDayLog,
		}
		if e.status == models.StatusCheckedOut {
			v.CheckOutTime = date + "T12:05:00"
		}
		visitors = append(visitors, v)
	}
	return visitors
}
