package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"argscan/internal/diagfmt"
	"argscan/internal/driver"
	"argscan/internal/scan"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file",
	Short: "Parse many argv lines against one schema",
	Long:  `Batch reads one whitespace-separated argv per line ("-" reads stdin), parses every line in parallel against the manifest schema, and emits one result per line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("schema", "s", "argscan.toml", "schema manifest path")
	batchCmd.Flags().String("format", "json", "output format (json|pretty)")
	batchCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	batchCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	batchCmd.Flags().Bool("allow-unknown", false, "collect unrecognized flags instead of failing")
}

// batchLineJSON is the JSON-lines record for one parsed input line.
type batchLineJSON struct {
	Line   int                `json:"line"`
	Argv   []string           `json:"argv"`
	Result diagfmt.ResultJSON `json:"result"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	schemaPath, err := cmd.Flags().GetString("schema")
	if err != nil {
		return fmt.Errorf("failed to get schema flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	allowUnknown, err := cmd.Flags().GetBool("allow-unknown")
	if err != nil {
		return fmt.Errorf("failed to get allow-unknown flag: %w", err)
	}
	maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return fmt.Errorf("failed to get max-issues flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	switch format {
	case "json", "pretty":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	lines, err := readBatchLines(args[0])
	if err != nil {
		return err
	}
	norm, err := loadNormalizedSchema(schemaPath)
	if err != nil {
		return err
	}

	req := &driver.Request{
		Norm:  norm,
		Lines: lines,
		Opts:  scan.Options{AllowUnknown: allowUnknown},
		Jobs:  jobs,
	}

	var items []driver.Item
	if shouldUseTUI(mode) {
		items, err = runBatchWithUI(cmd.Context(), fmt.Sprintf("parsing %d lines", len(lines)), req)
	} else {
		items, err = driver.ParseAll(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	failed := 0
	enc := json.NewEncoder(os.Stdout)
	for _, item := range items {
		if !item.Result.OK {
			failed++
		}
		switch format {
		case "json":
			record := batchLineJSON{
				Line:   item.Line,
				Argv:   item.Argv,
				Result: diagfmt.BuildResultJSON(item.Result, diagfmt.JSONOpts{MaxIssues: maxIssues}),
			}
			if err := enc.Encode(record); err != nil {
				return err
			}
		case "pretty":
			fmt.Printf("line %d: %s\n", item.Line, driver.Label(item.Argv))
			prettyOpts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stdout),
				MaxIssues: maxIssues,
			}
			if err := diagfmt.PrettyResult(os.Stdout, item.Result, prettyOpts); err != nil {
				return err
			}
		}
	}

	if !quiet && format == "pretty" {
		fmt.Printf("%d lines, %d failed\n", len(items), failed)
	}
	if failed > 0 {
		return silentExit(cmd)
	}
	return nil
}

// readBatchLines tokenizes input on whitespace, one argv per line. Blank
// lines and '#' comments are skipped.
func readBatchLines(path string) ([][]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
