package general

import (
	"strings"
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"2026-08-29", true},
		{"2026-02-30", false},
		{"29-08-2026", false},
		{"2026-8-9", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidDate(c.value); got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("site@example.com") {
		t.Error("expected valid email")
	}
	if IsValidEmail("not-an-email") {
		t.Error("expected invalid email")
	}
}

func TestDateCutoff(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	// a 30 day window covers today plus the 29 days before it
	if got := DateCutoff(now, 30); got != "2026-07-31" {
		t.Fatalf("DateCutoff 30 = %q, want 2026-07-31", got)
	}
	if got := DateCutoff(now, 7); got != "2026-08-23" {
		t.Fatalf("DateCutoff 7 = %q, want 2026-08-23", got)
	}
	if got := DateCutoff(now, 1); got != "2026-08-29" {
		t.Fatalf("DateCutoff 1 = %q, want 2026-08-29", got)
	}
}

func TestSanitizeStringDate(t *testing.T) {
	if got := SanitizeStringDate("2026-08-29"); got != "2026-08-29" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeStringDate("2026-08-29'; DROP TABLE"); got != "2026-08-29" {
		t.Fatalf("sanitized injection = %q, want bare date", got)
	}
	if got := SanitizeStringDate("2026-08-29 OR 1=1"); got != "" {
		t.Fatalf("trailing digits survived: %q", got)
	}
	if got := SanitizeStringDate("yesterday"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("Harbour Bridge"); got != "Harbour Bridge" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeString(`x" OR "1"="1`); strings.ContainsAny(got, `"'=`) {
		t.Fatalf("quotes survived sanitizing: %q", got)
	}
}

func TestGeneratePassword(t *testing.T) {
	got := GeneratePassword(8, 1, 1, 1, 1)
	if len(got) != 8 {
		t.Fatalf("password length = %d, want 8", len(got))
	}
}

func TestRemoveDuplicateArrayInt(t *testing.T) {
	got := RemoveDuplicateArrayInt([]int{3, 1, 3, 2, 1})
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 unique values", got)
	}
	if got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestParseTemplateEmailToPlainText(t *testing.T) {
	html := `<html><body><p>Hello <b>Reni</b></p><a href="https://example.com/reset">Reset</a></body></html>`
	got := ParseTemplateEmailToPlainText(html)
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "Reni") {
		t.Fatalf("plain text lost content: %q", got)
	}
	if strings.Contains(got, "<p>") || strings.Contains(got, "<b>") {
		t.Fatalf("tags survived: %q", got)
	}
	if !strings.Contains(got, "Reset [https://example.com/reset]") {
		t.Fatalf("link href not rendered: %q", got)
	}
}
