package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/mapping"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	numberRe      = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][-+]?\d+)?$`)
	leadingZeroRe = regexp.MustCompile(`^-?0\d`)
)

// valueHelp describes how --set and --filter values are typed.
const valueHelp = `Values: true/false become booleans, plain digits become numbers and [a,b] becomes
a list. Digits with a leading zero (01234) stay text. Wrap a value in double quotes
to force text, e.g. --set 'ref="123"'. Run "odoolink resources" for aliases and operators.`

// parseValue converts a command-line value: numbers, true/false, [a,b] lists and
// "quoted" strings; everything else stays a string. Digits with a leading zero
// (zip codes, references) are kept as strings.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	switch {
	case s == "true":
		return true
	case s == "false":
		return false
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		return s[1 : len(s)-1]
	case len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']':
		inner := strings.TrimSpace(s[1 : len(s)-1])
		list := []any{}
		if inner == "" {
			return list
		}
		for _, part := range strings.Split(inner, ",") {
			list = append(list, parseValue(part))
		}
		return list
	case numberRe.MatchString(s) && !leadingZeroRe.MatchString(s):
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// parseAssignments turns name=value pairs into field updates.
func parseAssignments(op string, pairs []string) ([]mapping.FieldUpdate, error) {
	updates := make([]mapping.FieldUpdate, 0, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Invalid(op, fmt.Sprintf("expected name=value, got %q", p))
		}
		updates = append(updates, mapping.FieldUpdate{Name: name, Value: parseValue(value)})
	}
	return updates, nil
}

// parseFilter reads "field operator value", e.g. "name like Acme" or
// "id not in [1,2]".
func parseFilter(op, s string) (mapping.Filter, error) {
	bad := func() (mapping.Filter, error) {
		return mapping.Filter{}, errors.Invalid(op, fmt.Sprintf("expected \"field operator value\", got %q", s))
	}
	field, rest, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok || field == "" {
		return bad()
	}
	rest = strings.TrimSpace(rest)

	var opText, value string
	if lower := strings.ToLower(rest); strings.HasPrefix(lower, "not in ") {
		opText, value = rest[:len("not in")], rest[len("not in "):]
	} else if opText, value, ok = strings.Cut(rest, " "); !ok {
		return bad()
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return bad()
	}

	fop, err := mapping.ParseFilterOperator(opText)
	if err != nil {
		return mapping.Filter{}, errors.Invalid(op, err.Error())
	}
	return mapping.Filter{Field: field, Operator: fop, Value: parseValue(value)}, nil
}

// splitFields parses a comma-separated --fields value; empty means all fields.
func splitFields(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// printJSON writes v indented. Raw JSON is re-indented as is.
func printJSON(w io.Writer, v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			_, werr := fmt.Fprintln(w, string(raw))
			return werr
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// recordTable renders a list of records as a pterm table. Columns are the
// requested fields, or every key with "id" first.
func recordTable(raw json.RawMessage, fields []string) (string, error) {
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return "", fmt.Errorf("result is not a list of records: %w", err)
	}
	if len(records) == 0 {
		return "No records found.", nil
	}
	columns := fields
	if len(columns) == 0 {
		columns = recordColumns(records)
	}
	data := [][]string{columns}
	for _, r := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cellText(r[c])
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func recordColumns(records []map[string]any) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range records {
		for k := range r {
			if !seen[k] && k != "id" {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	if _, ok := records[0]["id"]; ok {
		cols = append([]string{"id"}, cols...)
	}
	return cols
}

// cellText flattens a field value. Many2one values arrive as [id, "name"].
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if !t {
			return ""
		}
		return "true"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		if len(t) == 2 {
			if name, ok := t[1].(string); ok {
				return name
			}
		}
		b, _ := json.Marshal(t)
		return string(b)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// startSpinner shows an inline spinner with text on w until the returned
// function is called.
func startSpinner(w io.Writer, text string) func() {
	frames := []string{"|", "/", "-", "\\"}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	cursor.Hide()
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
			cursor.Show()
		})
	}
}

// spin starts a spinner on stderr when it is a terminal.
func spin(cmd *cobra.Command, text string) func() {
	f, ok := cmd.ErrOrStderr().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	return startSpinner(f, text)
}
