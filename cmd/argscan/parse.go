package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"argscan/internal/diagfmt"
	"argscan/internal/flagspec"
	"argscan/internal/manifest"
	"argscan/internal/scan"
)

// errParseFailed carries no message: the issues were already printed.
var errParseFailed = errors.New("")

var parseCmd = &cobra.Command{
	Use:   "parse [flags] -- [tokens...]",
	Short: "Parse tokens against a schema manifest",
	Long:  `Parse scans the given tokens against the schema declared in an argscan.toml manifest and reports typed values plus structured issues`,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("schema", "s", "argscan.toml", "schema manifest path")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	parseCmd.Flags().Bool("allow-unknown", false, "collect unrecognized flags instead of failing")
	parseCmd.Flags().Bool("scan-after-double-dash", false, "keep scanning past a bare --")
}

func runParse(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	schemaPath, err := cmd.Flags().GetString("schema")
	if err != nil {
		return fmt.Errorf("failed to get schema flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	allowUnknown, err := cmd.Flags().GetBool("allow-unknown")
	if err != nil {
		return fmt.Errorf("failed to get allow-unknown flag: %w", err)
	}
	scanAfter, err := cmd.Flags().GetBool("scan-after-double-dash")
	if err != nil {
		return fmt.Errorf("failed to get scan-after-double-dash flag: %w", err)
	}
	maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return fmt.Errorf("failed to get max-issues flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	norm, err := loadNormalizedSchema(schemaPath)
	if err != nil {
		return err
	}

	opts := scan.Options{AllowUnknown: allowUnknown}
	if scanAfter {
		stop := false
		opts.StopAtDoubleDash = &stop
	}

	res := scan.Parse(norm, args, opts)

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stdout),
			ShowValues: !quiet,
			MaxIssues:  maxIssues,
		}
		if err := diagfmt.PrettyResult(os.Stdout, res, prettyOpts); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.WriteResultJSON(os.Stdout, res, diagfmt.JSONOpts{MaxIssues: maxIssues}); err != nil {
			return err
		}
	case "msgpack":
		if err := diagfmt.WriteResultMsgpack(os.Stdout, res, diagfmt.JSONOpts{MaxIssues: maxIssues}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !res.OK {
		return silentExit(cmd)
	}
	return nil
}

// loadNormalizedSchema loads a manifest and runs the construction-time
// validation, so schema faults surface before any token is scanned.
func loadNormalizedSchema(path string) (*flagspec.Normalized, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	norm, err := flagspec.Normalize(m.Schema)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid schema: %w", path, err)
	}
	return norm, nil
}
