package forms

import (
	"testing"
)

func TestValidate_SignupValid(t *testing.T) {
	f := SignupForm{Username: "alice", Email: "alice@x.com", Password: "secret1"}
	if errs := Validate(&f); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_SignupMissingFields(t *testing.T) {
	f := SignupForm{}
	errs := Validate(&f)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
	for _, field := range []string{"username", "email", "password"} {
		if errs[field] != "This field is required" {
			t.Errorf("expected required message for %s, got %q", field, errs[field])
		}
	}
}

func TestValidate_SignupBadEmail(t *testing.T) {
	f := SignupForm{Username: "alice", Email: "not-an-email", Password: "secret1"}
	errs := Validate(&f)
	if errs["email"] != "Enter a valid email address" {
		t.Errorf("expected email message, got %v", errs)
	}
	if _, ok := errs["username"]; ok {
		t.Errorf("username should not be flagged: %v", errs)
	}
}

func TestValidate_SignupShortPassword(t *testing.T) {
	f := SignupForm{Username: "alice", Email: "alice@x.com", Password: "short"}
	errs := Validate(&f)
	if errs["password"] != "Must be at least 6 characters" {
		t.Errorf("expected min-length message, got %v", errs)
	}
}

func TestValidate_LoginPasswordLengthNotChecked(t *testing.T) {
	// Login only requires presence; the length rule applies at signup.
	f := LoginForm{Email: "alice@x.com", Password: "x"}
	if errs := Validate(&f); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_RequestForm(t *testing.T) {
	f := RequestForm{Title: "Fix light"}
	errs := Validate(&f)
	if errs["description"] != "This field is required" {
		t.Errorf("expected description error, got %v", errs)
	}
	f.Description = "bulb out"
	if errs := Validate(&f); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}
