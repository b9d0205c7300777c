package llm

import "errors"

// Sentinel errors returned by Generate. Callers in the coach treat all of
// them as a reason to fall back to built-in checks.
var (
	ErrOllamaUnavailable = errors.New("model server unreachable")
	ErrTimeout           = errors.New("model call timed out")
	ErrInvalidOutput     = errors.New("model returned unusable output")
	ErrRetryExhausted    = errors.New("model call failed after all retries")
)

// errorCodes maps sentinels to the codes reported to observers, most
// specific first.
var errorCodes = []struct {
	err  error
	code string
}{
	{ErrTimeout, "TIMEOUT"},
	{ErrOllamaUnavailable, "UNAVAILABLE"},
	{ErrInvalidOutput, "INVALID_OUTPUT"},
}

func errorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "UNKNOWN"
}
