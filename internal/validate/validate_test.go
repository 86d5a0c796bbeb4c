package validate

import (
	"reflect"
	"strings"
	"testing"
)

func validForm() ContactForm {
	return ContactForm{
		Name:        "Ali Veli",
		Email:       "ali@example.com",
		Phone:       "0532 123 45 67",
		Subject:     "genel",
		Message:     "Merhaba, bilgi almak istiyorum.",
		KVKKConsent: true,
	}
}

func TestContactForm_Valid(t *testing.T) {
	res := Options{RequireConsent: true}.ContactForm(validForm())
	if !res.Valid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if res.Sanitized.Phone != "05321234567" {
		t.Errorf("expected phone normalized to 05321234567, got %q", res.Sanitized.Phone)
	}
}

func TestContactForm_TrimsAndLowercases(t *testing.T) {
	form := validForm()
	form.Name = "  Ali Veli  "
	form.Email = "  ALI@Example.COM "

	res := Options{}.ContactForm(form)
	if !res.Valid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if res.Sanitized.Name != "Ali Veli" {
		t.Errorf("expected trimmed name, got %q", res.Sanitized.Name)
	}
	if res.Sanitized.Email != "ali@example.com" {
		t.Errorf("expected lower-cased email, got %q", res.Sanitized.Email)
	}
}

// TestContactForm_NameTooShort verifies names under 2 chars fail with a
// name-related error.
func TestContactForm_NameTooShort(t *testing.T) {
	form := validForm()
	form.Name = " A "

	res := Options{}.ContactForm(form)
	if res.Valid {
		t.Fatal("expected invalid for 1-char name")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "İsim") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error mentioning the name field, got %v", res.Errors)
	}
}

func TestContactForm_BadEmail(t *testing.T) {
	for _, email := range []string{"", "no-at-sign", "a@b", "a b@c.com", strings.Repeat("x", 250) + "@e.com"} {
		form := validForm()
		form.Email = email
		if res := (Options{}).ContactForm(form); res.Valid {
			t.Errorf("expected invalid for email %q", email)
		}
	}
}

func TestContactForm_Phone(t *testing.T) {
	valid := []string{"", "+90 532 123 45 67", "05321234567", "+44 20 7946 0958"}
	for _, phone := range valid {
		form := validForm()
		form.Phone = phone
		if res := (Options{}).ContactForm(form); !res.Valid {
			t.Errorf("expected valid for phone %q, got %v", phone, res.Errors)
		}
	}

	invalid := []string{"abc", "123", "+90-532-telefon"}
	for _, phone := range invalid {
		form := validForm()
		form.Phone = phone
		if res := (Options{}).ContactForm(form); res.Valid {
			t.Errorf("expected invalid for phone %q", phone)
		}
	}
}

// TestContactForm_MessageBounds verifies the 10–2000 char message rule.
func TestContactForm_MessageBounds(t *testing.T) {
	form := validForm()
	form.Message = "kısa"
	if res := (Options{}).ContactForm(form); res.Valid {
		t.Error("expected invalid for message under 10 chars")
	}

	form.Message = strings.Repeat("a", 2001)
	if res := (Options{}).ContactForm(form); res.Valid {
		t.Error("expected invalid for message over 2000 chars")
	}

	form.Message = strings.Repeat("a", 2000)
	if res := (Options{}).ContactForm(form); !res.Valid {
		t.Errorf("expected valid at exactly 2000 chars, got %v", res.Errors)
	}
}

// TestContactForm_SpamKeyword verifies a spam keyword invalidates an
// otherwise valid submission.
func TestContactForm_SpamKeyword(t *testing.T) {
	form := validForm()
	form.Message = "Size özel bitcoin yatırım fırsatı sunuyoruz."

	if res := (Options{}).ContactForm(form); res.Valid {
		t.Error("expected invalid for message containing a spam keyword")
	}
}

// TestContactForm_Honeypot verifies any honeypot value invalidates the whole
// submission, even with all other fields valid.
func TestContactForm_Honeypot(t *testing.T) {
	form := validForm()
	form.Website = "http://spam.example"

	if res := (Options{}).ContactForm(form); res.Valid {
		t.Error("expected invalid for non-empty honeypot")
	}
}

func TestContactForm_ConsentRequired(t *testing.T) {
	form := validForm()
	form.KVKKConsent = false

	if res := (Options{RequireConsent: true}).ContactForm(form); res.Valid {
		t.Error("expected invalid without consent when RequireConsent is set")
	}
	if res := (Options{}).ContactForm(form); !res.Valid {
		t.Errorf("expected valid without consent when RequireConsent is off, got %v", res.Errors)
	}
}

// TestContactForm_AccumulatesErrors verifies validation reports every
// violation instead of stopping at the first.
func TestContactForm_AccumulatesErrors(t *testing.T) {
	res := Options{}.ContactForm(ContactForm{Name: "X", Email: "bad", Subject: "a", Message: "kısa"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) < 4 {
		t.Errorf("expected at least 4 accumulated errors, got %d: %v", len(res.Errors), res.Errors)
	}
}

// TestContactForm_Idempotent verifies validating the same input twice yields
// identical results.
func TestContactForm_Idempotent(t *testing.T) {
	form := validForm()
	form.Name = " A "
	form.Message = "bitcoin fırsatı burada, hemen tıklayın"

	first := Options{RequireConsent: true}.ContactForm(form)
	second := Options{RequireConsent: true}.ContactForm(form)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v vs %+v", first, second)
	}
}
