package sim

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSimErrorFormatting tests the op/message/cause composition
func TestSimErrorFormatting(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ErrTraceUnreadable("LoadTrace", "workload.trace", cause)

	msg := err.Error()
	for _, want := range []string{"LoadTrace", "workload.trace", "permission denied"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}

// TestSimErrorUnwrap tests that the cause is reachable via errors.Is
func TestSimErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ErrTraceUnreadable("LoadTrace", "t.trace", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

// TestSimErrorIsByCode tests code-based matching between SimErrors
func TestSimErrorIsByCode(t *testing.T) {
	err := ErrMalformedTrace("ParseTrace", 3, "garbage")
	target := &SimError{Code: ErrCodeMalformedTrace}

	if !errors.Is(err, target) {
		t.Error("expected errors with equal codes to match")
	}
	if errors.Is(err, &SimError{Code: ErrCodeTraceUnreadable}) {
		t.Error("errors with different codes must not match")
	}
}

// TestErrorCodeHelpers tests IsErrorCode and GetErrorCode
func TestErrorCodeHelpers(t *testing.T) {
	err := ErrMissingRefreshRate("Validate")

	if !IsErrorCode(err, ErrCodeMissingRefreshRate) {
		t.Error("IsErrorCode should match the constructor's code")
	}
	if IsErrorCode(fmt.Errorf("plain"), ErrCodeMissingRefreshRate) {
		t.Error("plain errors carry no code")
	}
	if got := GetErrorCode(fmt.Errorf("plain")); got != ErrCodeUnknown {
		t.Errorf("GetErrorCode(plain) = %d, want ErrCodeUnknown", got)
	}
}
