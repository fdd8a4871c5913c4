package leads

// ValidationError is a user-input defect. Its message is safe to return
// verbatim to the caller and must never be logged as a server fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	// ErrNameTooShort is returned when the trimmed name is under 2 characters
	ErrNameTooShort = &ValidationError{Reason: "Please provide your full name."}

	// ErrInvalidEmail is returned when the email is missing or malformed
	ErrInvalidEmail = &ValidationError{Reason: "Please provide a valid email address."}

	// ErrMessageTooShort is returned when the trimmed message is under 10 characters
	ErrMessageTooShort = &ValidationError{Reason: "Please provide a bit more detail (≥ 10 characters)."}
)
