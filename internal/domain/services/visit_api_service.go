package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/infrastructure/config"
)

// DecisionAction is the decision written back to an upstream API
type DecisionAction string

const (
	ActionApprove DecisionAction = "APPROVED"
	ActionReject  DecisionAction = "REJECTED"
)

// InterfaceVisitAPIService is the client for the three upstream visit
// request APIs. Reads take the canonical lowercase status; each source's
// casing convention is applied internally.
type InterfaceVisitAPIService interface {
	FetchStaffRequests(ctx context.Context, status string) (*models.StaffResponse, error)
	FetchVendorVisits(ctx context.Context, status string) (*models.VendorResponse, error)
	FetchFamilyVisits(ctx context.Context, status string) (*models.FamilyResponse, error)
	UpdateStaffApproval(ctx context.Context, id int, action DecisionAction) error
	UpdateVendorApproval(ctx context.Context, requestID int, action DecisionAction) error
	UpdateFamilyApproval(ctx context.Context, requestID int, action DecisionAction) error
}

// VisitAPIService implements InterfaceVisitAPIService over HTTP
type VisitAPIService struct {
	StaffBaseURL  string
	VendorBaseURL string
	FamilyBaseURL string
	Client        *http.Client
}

// NewVisitAPIService creates the upstream client with endpoints from config
func NewVisitAPIService(cfg *config.Config) InterfaceVisitAPIService {
	return &VisitAPIService{
		StaffBaseURL:  cfg.StaffAPIURL,
		VendorBaseURL: cfg.VendorAPIURL,
		FamilyBaseURL: cfg.FamilyAPIURL,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchStaffRequests lists staff/contractor requests in the given status.
// The staff API expects a lowercase status value.
func (s *VisitAPIService) FetchStaffRequests(ctx context.Context, status string) (*models.StaffResponse, error) {
	var result models.StaffResponse
	if err := s.getJSON(ctx, s.StaffBaseURL, strings.ToLower(status), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchVendorVisits lists vendor visits in the given status.
// The vendor API expects an uppercase status value.
func (s *VisitAPIService) FetchVendorVisits(ctx context.Context, status string) (*models.VendorResponse, error) {
	var result models.VendorResponse
	if err := s.getJSON(ctx, s.VendorBaseURL, strings.ToUpper(status), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchFamilyVisits lists family visits in the given status.
// The family API expects an uppercase status value.
func (s *VisitAPIService) FetchFamilyVisits(ctx context.Context, status string) (*models.FamilyResponse, error) {
	var result models.FamilyResponse
	if err := s.getJSON(ctx, s.FamilyBaseURL, strings.ToUpper(status), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStaffApproval writes a decision to the staff API, which is keyed by
// the record id
func (s *VisitAPIService) UpdateStaffApproval(ctx context.Context, id int, action DecisionAction) error {
	body := map[string]interface{}{
		"id":              id,
		"approval_status": string(action),
	}
	return s.patch(ctx, s.StaffBaseURL, body, action)
}

// UpdateVendorApproval writes a decision to the vendor API, which is keyed by
// the shared request id and applies to every visit in the group
func (s *VisitAPIService) UpdateVendorApproval(ctx context.Context, requestID int, action DecisionAction) error {
	body := map[string]interface{}{
		"request_id":      requestID,
		"approval_status": string(action),
	}
	return s.patch(ctx, s.VendorBaseURL, body, action)
}

// UpdateFamilyApproval writes a decision to the family API, which uses the
// same request-keyed shape as the vendor API
func (s *VisitAPIService) UpdateFamilyApproval(ctx context.Context, requestID int, action DecisionAction) error {
	body := map[string]interface{}{
		"request_id":      requestID,
		"approval_status": string(action),
	}
	return s.patch(ctx, s.FamilyBaseURL, body, action)
}

func (s *VisitAPIService) getJSON(ctx context.Context, baseURL, status string, out interface{}) error {
	if baseURL == "" {
		return fmt.Errorf("upstream base URL is not configured")
	}

	reqURL := baseURL + "?status=" + url.QueryEscape(status)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// patch sends a decision write. Decisions go to the base URL itself; the
// target id travels in the body, not the path.
func (s *VisitAPIService) patch(ctx context.Context, baseURL string, body map[string]interface{}, action DecisionAction) error {
	if baseURL == "" {
		return fmt.Errorf("upstream base URL is not configured")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errText := "Unknown error"
		if data, readErr := io.ReadAll(resp.Body); readErr == nil && len(data) > 0 {
			errText = string(data)
		}
		return fmt.Errorf("failed to %s request: %s", strings.ToLower(string(action)), errText)
	}
	return nil
}
