package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "vendor.ops@example.com"}
	invalid := []string{"", "plainaddress", "a@b", "@example.com"}

	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestValidatePAN(t *testing.T) {
	if !ValidatePAN("ABCDE1234F") {
		t.Error("ABCDE1234F should be valid")
	}
	if !ValidatePAN(" abcde1234f ") {
		t.Error("PAN check should be case and whitespace tolerant")
	}
	if ValidatePAN("1234567890") {
		t.Error("all-digit PAN should be invalid")
	}
}

func TestValidateGSTIN(t *testing.T) {
	if !ValidateGSTIN("22ABCDE1234F1Z5") {
		t.Error("22ABCDE1234F1Z5 should be valid")
	}
	if ValidateGSTIN("22ABCDE1234F1X5") {
		t.Error("GSTIN without the Z check letter should be invalid")
	}
}

func TestValidateAadhar(t *testing.T) {
	if !ValidateAadhar("123456789012") {
		t.Error("12-digit number should be valid")
	}
	if ValidateAadhar("12345") {
		t.Error("short number should be invalid")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeATStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"accepted", "Approved"},
		{"APPROVED", "Approved"},
		{"  pass ", "Approved"},
		{"Failed", "Rejected"},
		{"not   ok", "Rejected"},
		{"wip", "Pending"},
		{"under review", "Pending"},
		{"", ""},
		{"Custom Status", "Custom Status"},
	}
	for _, tt := range tests {
		if got := NormalizeATStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeATStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
