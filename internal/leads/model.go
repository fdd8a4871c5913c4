package leads

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Lead is one validated inquiry as persisted to the store. Records are
// immutable after creation; there is no update or delete path.
type Lead struct {
	ID           string `dynamodbav:"id" json:"id"`
	Name         string `dynamodbav:"name" json:"name"`
	Email        string `dynamodbav:"email" json:"email"`
	Message      string `dynamodbav:"message" json:"message"`
	CreatedAt    int64  `dynamodbav:"ts" json:"ts"`
	CreatedAtISO string `dynamodbav:"ts_iso" json:"ts_iso"`
	ClientIP     string `dynamodbav:"ip,omitempty" json:"ip,omitempty"`
	UserAgent    string `dynamodbav:"userAgent,omitempty" json:"userAgent,omitempty"`
	Referer      string `dynamodbav:"referer,omitempty" json:"referer,omitempty"`
	// UTM is always present on stored items, as an empty map when the
	// submission carried no attribution.
	UTM map[string]any `dynamodbav:"utm" json:"utm"`
	// ExpiresAt drives store-managed expiry; zero means retention is
	// disabled and the attribute is omitted entirely.
	ExpiresAt int64 `dynamodbav:"ttl,omitempty" json:"ttl,omitempty"`
}

// Submission carries the visitor-supplied fields of an intake request
// before validation. UTM is an opaque attribution payload passed through
// to storage unchanged.
type Submission struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Message string         `json:"message"`
	UTM     map[string]any `json:"utm"`
}

// Deliberately permissive: anything shaped like local@domain.tld passes.
// Tightening this would start rejecting previously accepted addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the submission in a fixed order and returns the first
// failure. Fields are trimmed before checking; lengths count characters,
// not bytes, so multibyte names and messages measure the way the
// rejection messages read.
func (s *Submission) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(s.Name)) < 2 {
		return ErrNameTooShort
	}
	email := strings.TrimSpace(s.Email)
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Message)) < 10 {
		return ErrMessageTooShort
	}
	return nil
}
