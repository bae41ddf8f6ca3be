package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"argscan/internal/diag"
	"argscan/internal/scan"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
	flagColor    = color.New(color.FgCyan)
)

// PrettyResult форматирует результат в человекочитаемый вид:
// по строке на issue, затем (опционально) значения по ключам, затем
// rest/unknown и итоговая строка ok/failed.
func PrettyResult(w io.Writer, res *scan.Result, opts PrettyOpts) error {
	maxIssues := len(res.Issues)
	if opts.MaxIssues > 0 && opts.MaxIssues < maxIssues {
		maxIssues = opts.MaxIssues
	}

	for i := 0; i < maxIssues; i++ {
		if err := writeIssue(w, res.Issues[i], opts.Color); err != nil {
			return err
		}
	}
	if truncated := len(res.Issues) - maxIssues; truncated > 0 {
		if _, err := fmt.Fprintf(w, "... and %d more issues\n", truncated); err != nil {
			return err
		}
	}

	if opts.ShowValues {
		if err := writeValues(w, res, opts.Color); err != nil {
			return err
		}
	}

	if len(res.Rest) > 0 {
		if _, err := fmt.Fprintf(w, "rest: %s\n", strings.Join(res.Rest, " ")); err != nil {
			return err
		}
	}
	if len(res.Unknown) > 0 {
		if _, err := fmt.Fprintf(w, "unknown: %s\n", strings.Join(res.Unknown, " ")); err != nil {
			return err
		}
	}

	verdict := "failed"
	if res.OK {
		verdict = "ok"
	}
	if opts.Color {
		if res.OK {
			verdict = okColor.Sprint(verdict)
		} else {
			verdict = errorColor.Sprint(verdict)
		}
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}

func writeIssue(w io.Writer, is diag.Issue, colorize bool) error {
	sev := is.Severity.String()
	if colorize {
		switch is.Severity {
		case diag.SevError:
			sev = errorColor.Sprint(sev)
		case diag.SevWarning:
			sev = warningColor.Sprint(sev)
		}
	}

	if _, err := fmt.Fprintf(w, "%s %s: %s", sev, is.Code.ID(), is.Message); err != nil {
		return err
	}
	if is.Index != diag.NoIndex {
		if _, err := fmt.Fprintf(w, " (arg %d)", is.Index); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeValues(w io.Writer, res *scan.Result, colorize bool) error {
	keys := make([]string, 0, len(res.Values))
	for key := range res.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if colorize && res.Present[key] {
			name = flagColor.Sprint(key)
		}
		v := res.Values[key]
		if v == nil {
			if _, err := fmt.Fprintf(w, "  %s = <absent>\n", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s = %v\n", name, v); err != nil {
			return err
		}
	}
	return nil
}
