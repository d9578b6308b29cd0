package utils

import "testing"

func TestEmailLocalPart(t *testing.T) {
	tests := []struct {
		email    string
		fallback string
		want     string
	}{
		{"meera.krishnan@example.com", "Manager", "meera.krishnan"},
		{"", "Manager", "Manager"},
		{"@example.com", "Approver", "Approver"},
		{"no-at-sign", "Manager", "no-at-sign"},
	}

	for _, tt := range tests {
		if got := EmailLocalPart(tt.email, tt.fallback); got != tt.want {
			t.Errorf("EmailLocalPart(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}

func TestSyntheticEmail(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"Ravi Kumar", "vendor.com", "ravi.kumar@vendor.com"},
		// only the first space turns into a dot
		{"Lakshmi Narayanan Iyer", "family.com", "lakshmi.narayanan iyer@family.com"},
		{"Single", "family.com", "single@family.com"},
	}

	for _, tt := range tests {
		if got := SyntheticEmail(tt.name, tt.domain); got != tt.want {
			t.Errorf("SyntheticEmail(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
