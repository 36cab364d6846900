package models

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"admin", RoleAdmin, true},
		{"user", RoleUser, true},
		{"guest", RoleGuest, true},
		{"Admin", "", false},
		{"", "", false},
		{"root", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewUser_DefaultsRole(t *testing.T) {
	u := NewUser("1", UserDraft{Email: "a@b.co", Name: "Ann"}, time.Now())
	if u.Role != RoleUser {
		t.Errorf("role: got %q, want %q", u.Role, RoleUser)
	}
}

func TestNewUser_KeepsRoleAndStampsUTC(t *testing.T) {
	now := time.Date(2025, 2, 2, 8, 0, 0, 0, time.FixedZone("EST", -5*3600))
	u := NewUser("4", UserDraft{Email: "a@b.co", Name: "Ann", Role: RoleAdmin}, now)

	if u.Role != RoleAdmin || u.ID != "4" || u.Email != "a@b.co" || u.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !u.CreatedAt.Equal(now) || u.CreatedAt.Location() != time.UTC {
		t.Errorf("createdAt: got %v", u.CreatedAt)
	}
}
