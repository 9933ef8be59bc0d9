package validator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		uuid.NewString(),
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"{123e4567-e89b-12d3-a456-426614174000}",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("month", " 6 ")
	if err != nil || n != 6 {
		t.Fatalf("ParseInt(month, 6) = %d, %v", n, err)
	}

	for _, input := range []string{"", "june"} {
		_, err := ParseInt("month", input)
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("ParseInt(month, %q) error = %v, want ValidationErrors", input, err)
		}
		if _, ok := verrs.ToMap()["month"]; !ok {
			t.Errorf("ParseInt(month, %q) missing month field", input)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "month", Message: "bad"}, {Field: "year", Message: "worse"}}
	if got := errs.Error(); got != "month: bad; year: worse" {
		t.Errorf("Error() = %q", got)
	}
}
