// Package errors provides typed errors for muntjac.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrUnknownModel      ErrorCode = "UNKNOWN_MODEL"
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid     ErrorCode = "CONFIG_INVALID"
	ErrGitHubFetchFailed ErrorCode = "GITHUB_FETCH_FAILED"
	ErrBatchInvalid      ErrorCode = "BATCH_INVALID"
)

// MuntjacError represents a typed error with user-friendly hints.
type MuntjacError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *MuntjacError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MuntjacError) Unwrap() error {
	return e.Cause
}

// New creates a new MuntjacError.
func New(code ErrorCode, message, hint string) *MuntjacError {
	return &MuntjacError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new MuntjacError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *MuntjacError {
	return &MuntjacError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// InvalidInput returns an error for unusable prompt text.
func InvalidInput(reason string) *MuntjacError {
	return &MuntjacError{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("invalid prompt: %s", reason),
		Hint:    "Provide non-empty text via --prompt, --input, or stdin",
	}
}

// UnknownModel returns an error for unsupported model names.
func UnknownModel(name string) *MuntjacError {
	return &MuntjacError{
		Code:    ErrUnknownModel,
		Message: fmt.Sprintf("unsupported model: %s", name),
		Hint:    "Run `muntjac models` to list supported models",
	}
}

// ConfigNotFound returns an error for missing config file.
func ConfigNotFound(path string) *MuntjacError {
	return &MuntjacError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Muntjac runs with built-in defaults; create ~/.config/muntjac/config.yaml to persist your own",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *MuntjacError {
	return &MuntjacError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/muntjac/config.yaml",
	}
}

// GitHubFetchFailed returns an error for README fetch failures.
func GitHubFetchFailed(repo string, cause error) *MuntjacError {
	return &MuntjacError{
		Code:    ErrGitHubFetchFailed,
		Message: fmt.Sprintf("failed to fetch from %s", repo),
		Hint:    "Check that the repository exists and you have access",
		Cause:   cause,
	}
}

// BatchInvalid returns an error for malformed batch files.
func BatchInvalid(reason string, cause error) *MuntjacError {
	return &MuntjacError{
		Code:    ErrBatchInvalid,
		Message: fmt.Sprintf("invalid batch file: %s", reason),
		Hint:    "Provide a JSON array of strings, or separate prompts with --- lines",
		Cause:   cause,
	}
}
