package libs

import (
	"bookmart/models"
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCoverPublicID(t *testing.T) {
	now := time.Unix(1760443200, 0)
	for _, tc := range []struct {
		filename string
		want     string
	}{
		{"my cover.jpg", "1760443200_my_cover"},
		{"dir/front.PNG", "1760443200_front"},
		{".jpg", "1760443200_cover"},
	} {
		if got := CoverPublicID(tc.filename, now); got != tc.want {
			t.Errorf("CoverPublicID(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestNewCloudinaryFromEnvRequiresCredentials(t *testing.T) {
	for _, key := range []string{"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "CLOUDINARY_URL"} {
		t.Setenv(key, "")
	}
	if _, err := NewCloudinaryFromEnv(); err != ErrCloudinaryNotConfigured {
		t.Errorf("err = %v, want ErrCloudinaryNotConfigured", err)
	}
}

func TestNewEmailServiceRequiresSMTP(t *testing.T) {
	if _, err := NewEmailService("", 587, "user", "pass", "from@example.com"); err == nil {
		t.Error("missing host accepted")
	}
	if _, err := NewEmailService("smtp.example.com", 587, "user", "pass", "from@example.com"); err != nil {
		t.Errorf("complete config rejected: %v", err)
	}
}

func TestBuildOrderConfirmation(t *testing.T) {
	order := &models.Order{
		ID:          "o1",
		Status:      models.OrderStatusPending,
		TotalAmount: 30,
		Items: []models.OrderItem{
			{BookTitle: "Go <Fast>", BookAuthor: "Pike", Quantity: 3, Subtotal: 30},
		},
	}
	m := BuildOrderConfirmation("shop@example.com", "ana@example.com", "Ana", "BM12345678", order)

	if got := m.GetHeader("Subject"); len(got) != 1 || got[0] != "Your BookMart order BM12345678" {
		t.Errorf("Subject = %v", got)
	}
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "ana@example.com" {
		t.Errorf("To = %v", got)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{"BM12345678", "Go &lt;Fast&gt;", "PENDING"} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
