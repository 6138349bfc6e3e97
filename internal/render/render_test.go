package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"

	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/internal/engine"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"JSON", FormatJSON, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestResultText(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"string", Result{Op: "reverse", Value: "cba"}, "cba\n"},
		{"int", Result{Op: "count", Value: 3}, "3\n"},
		{"found", Result{Op: "find", Value: 4}, "4\n"},
		{"not found", Result{Op: "find", Value: fixstr.NPos}, "not found\n"},
		{"compare minus one", Result{Op: "compare", Value: -1}, "-1\n"},
		{"bool", Result{Op: "contains", Value: true}, "true\n"},
		{"uint64", Result{Op: "hash", Value: uint64(177670)}, "177670\n"},
		{"parts", Result{Op: "split", Value: []string{"key", "value"}}, "0 key\n1 value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf, FormatText, false).Result(tt.res); err != nil {
				t.Fatalf("Result() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Result() wrote %q; want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestResultJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatJSON, true)
	err := r.Result(Result{Op: "find", Mode: "narrow", Args: []string{"abcabc", "b"}, Value: 1})
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := sonnet.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", buf.String(), err)
	}
	if decoded["op"] != "find" || decoded["result"] != float64(1) || decoded["mode"] != "narrow" {
		t.Errorf("decoded = %v", decoded)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("JSON output should end with a newline")
	}
}

func TestInspectText(t *testing.T) {
	var buf bytes.Buffer
	ins := engine.Inspection{Mode: "narrow", Text: "ab", Len: 2, Size: 3, Units: []uint32{'a', 'b', 0}, Hash: 7}
	if err := New(&buf, FormatText, false).Inspect(ins); err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"fixstr inspect", `"ab"`, "0x61", "0x62", `\0`, "hash 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("Inspect() output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectJSON(t *testing.T) {
	var buf bytes.Buffer
	ins := engine.Inspection{Mode: "wide", Text: "ñ", Len: 1, Size: 2, Units: []uint32{0xF1, 0}, Hash: 9}
	if err := New(&buf, FormatJSON, false).Result(Result{Op: "inspect", Value: ins}); err != nil {
		t.Fatalf("Result() error = %v", err)
	}

	var decoded engine.Inspection
	if err := sonnet.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Text != "ñ" || decoded.Size != 2 || len(decoded.Units) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestError(t *testing.T) {
	bounds := fxerrors.InvalidBounds("substring", 4, 2, 5)

	var text bytes.Buffer
	if err := New(&text, FormatText, false).Error(bounds); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	if want := "Error: " + bounds.Error() + " (INVALID_BOUNDS)\n"; text.String() != want {
		t.Errorf("text Error() = %q; want %q", text.String(), want)
	}

	var plain bytes.Buffer
	_ = New(&plain, FormatText, false).Error(errors.New("boom"))
	if plain.String() != "Error: boom\n" {
		t.Errorf("plain Error() = %q", plain.String())
	}

	var js bytes.Buffer
	if err := New(&js, FormatJSON, false).Error(bounds); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	var decoded struct {
		Error struct {
			Code    string                 `json:"code"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	if err := sonnet.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Error.Code != "INVALID_BOUNDS" || decoded.Error.Details["length"] != float64(5) {
		t.Errorf("decoded = %+v", decoded)
	}
}
