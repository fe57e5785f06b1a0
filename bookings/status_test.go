package bookings

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeStatusUpdate(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/package-bookings/pb1", strings.NewReader(
		`{"status":"approved","adminNotes":"confirmed with venue"}`,
	))
	input, err := decodeStatusUpdate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Status != "approved" || input.AdminNotes != "confirmed with venue" {
		t.Fatalf("unexpected input: %+v", input)
	}
}

func TestDecodeStatusUpdateRejectsUnknownStatus(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/package-bookings/pb1", strings.NewReader(
		`{"status":"cancelled"}`,
	))
	if _, err := decodeStatusUpdate(req); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestDecodeStatusUpdateRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/package-bookings/pb1", strings.NewReader("{"))
	if _, err := decodeStatusUpdate(req); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
