// Package validate normalizes and validates contact form submissions.
// Validation is pure: the same input always produces the same result, all
// field violations are accumulated instead of short-circuiting, and a
// sanitized copy of the input is produced whether or not it is valid.
package validate

import (
	"regexp"
	"strings"

	"github.com/emlakofis/backend/internal/antispam"
)

// Field length bounds, measured after trimming.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	EmailMaxLen   = 254
	SubjectMinLen = 3
	SubjectMaxLen = 100
	MessageMinLen = 10
	MessageMaxLen = 2000
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Turkish mobile numbers: optional +90 or 0 prefix, then 5XXXXXXXXX.
	trMobileRegex = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)
	// Lenient fallback for international numbers.
	intlPhoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ContactForm is the raw, untrusted submission body.
type ContactForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Website     string `json:"website"` // honeypot, must stay empty
	KVKKConsent bool   `json:"kvkkConsent"`
}

// Sanitized holds the trimmed/normalized field values. It is populated even
// for invalid input; callers must check Result.Valid before using it.
type Sanitized struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Result is the outcome of validating a ContactForm.
type Result struct {
	Valid     bool
	Errors    []string
	Sanitized Sanitized
}

// Options controls optional validation behavior.
type Options struct {
	// RequireConsent rejects submissions without an explicit KVKK consent flag.
	// The original site enforced consent client-side only; this gate makes the
	// server-side check an explicit configuration choice.
	RequireConsent bool
}

// ContactForm validates and sanitizes raw. Error messages are user-facing
// and therefore in Turkish.
func (o Options) ContactForm(raw ContactForm) Result {
	s := Sanitized{
		Name:    strings.TrimSpace(raw.Name),
		Email:   strings.ToLower(strings.TrimSpace(raw.Email)),
		Phone:   phoneStripper.Replace(strings.TrimSpace(raw.Phone)),
		Subject: strings.TrimSpace(raw.Subject),
		Message: strings.TrimSpace(raw.Message),
	}

	var errs []string

	if n := len([]rune(s.Name)); n < NameMinLen || n > NameMaxLen {
		errs = append(errs, "İsim 2-100 karakter arasında olmalıdır")
	}
	if len(s.Email) > EmailMaxLen || !emailRegex.MatchString(s.Email) {
		errs = append(errs, "Geçerli bir e-posta adresi giriniz")
	}
	if s.Phone != "" && !trMobileRegex.MatchString(s.Phone) && !intlPhoneRegex.MatchString(s.Phone) {
		errs = append(errs, "Geçerli bir telefon numarası giriniz")
	}
	if n := len([]rune(s.Subject)); n < SubjectMinLen || n > SubjectMaxLen {
		errs = append(errs, "Konu 3-100 karakter arasında olmalıdır")
	}
	switch n := len([]rune(s.Message)); {
	case n < MessageMinLen || n > MessageMaxLen:
		errs = append(errs, "Mesaj 10-2000 karakter arasında olmalıdır")
	case antispam.ContainsSpamKeywords(s.Message):
		errs = append(errs, "Mesaj uygunsuz içerik barındırıyor")
	}

	// Honeypot: real users never see this field, so any value is a bot signal.
	if strings.TrimSpace(raw.Website) != "" {
		errs = append(errs, "Geçersiz gönderim")
	}

	if o.RequireConsent && !raw.KVKKConsent {
		errs = append(errs, "KVKK aydınlatma metnini onaylamanız gerekmektedir")
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Sanitized: s}
}
