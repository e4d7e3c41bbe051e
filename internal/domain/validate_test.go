package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePageSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"default", 20, false},
		{"upper bound", 100, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"above limit", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePageSize(tt.size)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.size {
				t.Errorf("expected %d returned unchanged, got %d", tt.size, got)
			}
		})
	}
}

func TestValidateCursor(t *testing.T) {
	if _, err := ValidateCursor(""); err != nil {
		t.Fatalf("empty cursor should pass, got %v", err)
	}

	ok := strings.Repeat("a", 100)
	if got, err := ValidateCursor(ok); err != nil || got != ok {
		t.Fatalf("100-char cursor should pass, got %q, %v", got, err)
	}

	tooLong := strings.Repeat("a", 101)
	if _, err := ValidateCursor(tooLong); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for 101-char cursor, got %v", err)
	}
}

func TestValidateID(t *testing.T) {
	got, err := ValidateID("  550  ", "tmdbId")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "550" {
		t.Errorf("expected trimmed id %q, got %q", "550", got)
	}

	// Idempotent: validating an already-validated id is a no-op.
	again, err := ValidateID(got, "tmdbId")
	if err != nil || again != got {
		t.Errorf("expected idempotent validation, got %q, %v", again, err)
	}

	for _, bad := range []string{"", "   ", "\t\n"} {
		if _, err := ValidateID(bad, "tmdbId"); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for %q, got %v", bad, err)
		}
	}
}

func TestContentTypeValid(t *testing.T) {
	if !ContentTypeMovie.Valid() || !ContentTypeTV.Valid() {
		t.Error("movie and tv should be valid content types")
	}
	if ContentType("podcast").Valid() {
		t.Error("podcast should not be a valid content type")
	}
}
