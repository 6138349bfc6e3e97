// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping, code/severity mapping
//              and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-02-10 v0.2.0: Tests for the reduced fixstr code set

package error

import (
	"errors"
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap foundation error",
			err:     New("begin exceeds end").WithCode(CodeInvalidBounds),
			message: "substring",
			wantMsg: "substring: begin exceeds end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok && wrapped.Code() != inner.Code() {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	if want := "top layer: middle layer: root cause"; top.Error() != want {
		t.Errorf("Error() = %q, want %q", top.Error(), want)
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is should find the root cause")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}

	var fe *Error
	if !errors.As(top, &fe) {
		t.Error("errors.As should find *Error")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	fe := err.(*Error)
	if fe.Details()["truncated"] != true {
		t.Error("deep chain should be truncated")
	}
	if !strings.Contains(fe.Error(), "root") {
		t.Errorf("truncated error should keep root message, got %q", fe.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidBounds, SeverityLow},
		{CodeInvalidFormat, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidBounds)
	if explicit.Severity() != SeverityHigh {
		t.Error("WithCode should not override an explicit severity")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("bad digits").WithCode(CodeInvalidFormat)
	outer := Wrap(inner, "atoi")

	if !HasCode(outer, CodeInvalidFormat) {
		t.Error("HasCode should see the wrapped code")
	}
	if HasCode(errors.New("plain"), CodeInvalidFormat) {
		t.Error("HasCode on a plain error should be false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on a plain error should be CodeUnknown")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidBounds, "string", 2},
		{CodeInvalidInput, "validation", 2},
		{CodeConfigError, "configuration", 3},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.category)
		}
		if got := tt.code.ExitCode(); got != tt.exit {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.exit)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}

	if Code("BOGUS").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("begin exceeds end").
		WithCode(CodeInvalidBounds).
		WithOperation("substring").
		WithDetail("begin", 4)

	data, mErr := err.MarshalJSON()
	if mErr != nil {
		t.Fatalf("MarshalJSON() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := sonnet.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "INVALID_BOUNDS" {
		t.Errorf("code = %v, want INVALID_BOUNDS", decoded["code"])
	}
	if decoded["operation"] != "substring" {
		t.Errorf("operation = %v, want substring", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidFormat).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INVALID_FORMAT", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
