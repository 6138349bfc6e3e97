// Package render writes command results as styled text or JSON.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sugawarayuuta/sonnet"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/internal/engine"
)

// Format is the output encoding
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses "text" or "json"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fxerrors.InvalidInput("render", "parse_format", s, "text or json")
}

// Result is the outcome of one command
type Result struct {
	Op    string      `json:"op"`
	Mode  string      `json:"mode"`
	Args  []string    `json:"args"`
	Value interface{} `json:"result"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Operation string                 `json:"operation,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Renderer writes results to one output
type Renderer struct {
	out    io.Writer
	format Format
	st     styles
}

// New returns a renderer writing to out. color only affects text output.
func New(out io.Writer, format Format, color bool) *Renderer {
	return &Renderer{
		out:    out,
		format: format,
		st:     newStyles(lipgloss.NewRenderer(out), color),
	}
}

// Format returns the output encoding
func (r *Renderer) Format() Format {
	return r.format
}

// Result writes a command result. In text mode a bare value is printed so
// output can be piped; NPos search results are shown as "not found".
func (r *Renderer) Result(res Result) error {
	if r.format == FormatJSON {
		return r.writeJSON(res)
	}

	switch v := res.Value.(type) {
	case []string:
		for i, part := range v {
			if _, err := fmt.Fprintf(r.out, "%s %s\n", r.st.label.Render(strconv.Itoa(i)), part); err != nil {
				return err
			}
		}
		return nil
	case engine.Inspection:
		return r.Inspect(v)
	}

	_, err := fmt.Fprintln(r.out, r.text(res))
	return err
}

func (r *Renderer) text(res Result) string {
	switch v := res.Value.(type) {
	case string:
		return v
	case bool:
		if v {
			return r.st.match.Render("true")
		}
		return r.st.miss.Render("false")
	case int:
		if res.Op == "find" && v == fixstr.NPos {
			return r.st.miss.Render("not found")
		}
		return r.st.value.Render(strconv.Itoa(v))
	default:
		return r.st.value.Render(fmt.Sprint(v))
	}
}

// Inspect writes the unit layout of a string as a table
func (r *Renderer) Inspect(ins engine.Inspection) error {
	if r.format == FormatJSON {
		return r.writeJSON(ins)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.st.border).
		Headers("index", "unit", "hex", "char").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.st.header
			}
			return r.st.cell
		})
	for i, u := range ins.Units {
		t.Row(strconv.Itoa(i), strconv.FormatUint(uint64(u), 10), fmt.Sprintf("0x%02X", u), glyph(u, i == ins.Len))
	}

	summary := fmt.Sprintf("%s %q\n%s %d  %s %d  %s %s  %s %d",
		r.st.label.Render("text"), ins.Text,
		r.st.label.Render("len"), ins.Len,
		r.st.label.Render("size"), ins.Size,
		r.st.label.Render("mode"), ins.Mode,
		r.st.label.Render("hash"), ins.Hash)

	out := lipgloss.JoinVertical(lipgloss.Left,
		r.st.title.Render("fixstr inspect"),
		summary,
		t.String(),
	)
	_, err := fmt.Fprintln(r.out, r.st.box.Render(out))
	return err
}

func glyph(u uint32, terminator bool) string {
	switch {
	case terminator:
		return `\0`
	case u < 0x20 || u == 0x7F:
		return fmt.Sprintf(`\x%02x`, u)
	case u > 0x10FFFF:
		return "?"
	}
	return string(rune(u))
}

// Error writes err in the output format. Foundation errors keep their code
// and details.
func (r *Renderer) Error(err error) error {
	detail := errorDetail{
		Code:    string(fxerror.GetCode(err)),
		Message: err.Error(),
	}
	if fe, ok := err.(*fxerror.Error); ok {
		detail.Operation = fe.Operation()
		detail.Details = fe.Details()
	}

	if r.format == FormatJSON {
		return r.writeJSON(errorBody{Error: detail})
	}

	line := r.st.err.Render("Error:") + " " + detail.Message
	if detail.Code != string(fxerror.CodeUnknown) {
		line += " " + r.st.muted.Render("("+detail.Code+")")
	}
	_, werr := fmt.Fprintln(r.out, line)
	return werr
}

func (r *Renderer) writeJSON(v interface{}) error {
	data, err := sonnet.Marshal(v)
	if err != nil {
		return fxerrors.OperationFailed("render", "marshal", err)
	}
	data = append(data, '\n')
	_, err = r.out.Write(data)
	return err
}
