package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/infrastructure/config"
)

// GatePass is a short-lived credential a visitor presents at the gate.
// Passes live in Redis only; expiry is enforced by the key TTL.
type GatePass struct {
	Token     string         `json:"token"`
	VisitorID string         `json:"visitor_id"`
	Visitor   models.Visitor `json:"visitor"`
	IssuedAt  string         `json:"issued_at"`
	ExpiresAt string         `json:"expires_at"`
}

// InterfacePassService issues and resolves gate passes
type InterfacePassService interface {
	IssuePass(ctx context.Context, visitor models.Visitor) (*GatePass, error)
	ResolvePass(ctx context.Context, token string) (*GatePass, error)
	RevokePass(ctx context.Context, token string) error
}

// PassService implements InterfacePassService on Redis
type PassService struct {
	client *redis.Client
	ttl    time.Duration
}

// ErrPassNotFound is returned when a token does not resolve to a live pass
var ErrPassNotFound = fmt.Errorf("gate pass not found or expired")

// NewPassService creates a PassService with its own Redis client
func NewPassService(cfg *config.Config) InterfacePassService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	return &PassService{
		client: client,
		ttl:    time.Duration(cfg.PassTTLMinutes) * time.Minute,
	}
}

// IssuePass creates a pass for a visitor and stores it under a fresh token
func (s *PassService) IssuePass(ctx context.Context, visitor models.Visitor) (*GatePass, error) {
	now := time.Now().UTC()
	pass := &GatePass{
		Token:     uuid.New().String(),
		VisitorID: visitor.ID,
		Visitor:   visitor,
		IssuedAt:  now.Format(time.RFC3339),
		ExpiresAt: now.Add(s.ttl).Format(time.RFC3339),
	}

	data, err := json.Marshal(pass)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gate pass: %w", err)
	}

	if err := s.client.Set(ctx, passKey(pass.Token), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store gate pass: %w", err)
	}
	return pass, nil
}

// ResolvePass looks up a pass by token
func (s *PassService) ResolvePass(ctx context.Context, token string) (*GatePass, error) {
	data, err := s.client.Get(ctx, passKey(token)).Bytes()
	if err == redis.Nil {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gate pass: %w", err)
	}

	var pass GatePass
	if err := json.Unmarshal(data, &pass); err != nil {
		return nil, fmt.Errorf("failed to decode gate pass: %w", err)
	}
	return &pass, nil
}

// RevokePass deletes a pass before its TTL runs out
func (s *PassService) RevokePass(ctx context.Context, token string) error {
	deleted, err := s.client.Del(ctx, passKey(token)).Result()
	if err != nil {
		return fmt.Errorf("failed to revoke gate pass: %w", err)
	}
	if deleted == 0 {
		return ErrPassNotFound
	}
	return nil
}

func passKey(token string) string {
	return "gateapp:pass:" + token
}
