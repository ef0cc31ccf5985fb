package utils

import (
	"mime/multipart"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidatePassword(t *testing.T) {
	for _, tc := range []struct {
		password string
		want     string
	}{
		{"", "Password must be at least 8 characters"},
		{"Ab1!", "Password must be at least 8 characters"},
		{"abcdefg1!", "Password must contain at least one uppercase letter"},
		{"ABCDEFG1!", "Password must contain at least one lowercase letter"},
		{"Abcdefgh!", "Password must contain at least one digit"},
		{"Abcdefgh1", "Password must contain at least one special character (!@#$%^&+=)"},
		{"Abcdefgh1*", "Password must contain at least one special character (!@#$%^&+=)"},
		{"Abcdefg1=", ""},
		{"Str0ng&Safe", ""},
	} {
		err := ValidatePassword(tc.password)
		got := ""
		if err != nil {
			got = err.Error()
		}
		if got != tc.want {
			t.Errorf("ValidatePassword(%q) = %q, want %q", tc.password, got, tc.want)
		}
	}
}

func TestValidateRegistrationPassword(t *testing.T) {
	if err := ValidateRegistrationPassword("Str0ng&Safe", "Str0ng&Saf"); err != ErrPasswordMismatch {
		t.Errorf("mismatch: err = %v", err)
	}
	if err := ValidateRegistrationPassword("Str0ng&Safe", ""); err != nil {
		t.Errorf("missing confirmation should be allowed: %v", err)
	}
	if err := ValidateRegistrationPassword("weak", "weak"); err == nil {
		t.Error("weak password accepted")
	}
}

func TestFormatPrice(t *testing.T) {
	for _, tc := range []struct {
		price float64
		want  string
	}{
		{0, "₹0"},
		{10, "₹300"},
		{12.99, "₹390"},
		{33.34, "₹1,000"},
		{5000, "₹1,50,000"},
		{41152, "₹12,34,560"},
		{-10, "-₹300"},
	} {
		if got := FormatPrice(tc.price); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestOrderNumber(t *testing.T) {
	now := time.UnixMilli(1760443200123)
	if got := OrderNumber(now); got != "BM43200123" {
		t.Errorf("OrderNumber = %q", got)
	}
}

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	expired := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	valid := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	noExpiry := signedToken(t, jwt.RegisteredClaims{Subject: "ana@example.com"})

	for _, tc := range []struct {
		name  string
		token string
		want  bool
	}{
		{"expired", expired, true},
		{"valid", valid, false},
		{"no exp", noExpiry, false},
		{"opaque", "not-a-jwt", false},
		{"empty", "", false},
	} {
		if got := TokenExpired(tc.token, now); got != tc.want {
			t.Errorf("%s: TokenExpired = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidateCoverImage(t *testing.T) {
	for _, tc := range []struct {
		name string
		size int64
		ok   bool
	}{
		{"cover.JPG", 1024, true},
		{"cover.webp", MaxCoverSize, true},
		{"cover.pdf", 1024, false},
		{"cover.png", MaxCoverSize + 1, false},
	} {
		err := ValidateCoverImage(&multipart.FileHeader{Filename: tc.name, Size: tc.size})
		if (err == nil) != tc.ok {
			t.Errorf("ValidateCoverImage(%s, %d) = %v", tc.name, tc.size, err)
		}
	}
}
