package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"argscan/internal/flagspec"
	"argscan/internal/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check manifest.toml",
	Short: "Validate a schema manifest",
	Long:  `Check runs the construction-time schema validation only and prints the canonicalized flag table`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	norm, err := flagspec.Normalize(m.Schema)
	if err != nil {
		return fmt.Errorf("%s: invalid schema: %w", path, err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		return nil
	}

	colorize := useColor(cmd, os.Stdout)
	keyColor := color.New(color.FgCyan)

	fmt.Printf("%s: schema %q ok, %d keys\n", path, m.Name, len(norm.Keys))
	for _, key := range norm.Keys {
		spec := norm.Specs[key]
		name := key
		if colorize {
			name = keyColor.Sprint(key)
		}
		canonical := norm.Canonical[key]
		if canonical == "" {
			canonical = norm.First(key)
		}

		aliases := make([]string, len(spec.Flags))
		copy(aliases, spec.Flags)
		sort.Strings(aliases)

		fmt.Printf("  %-12s %-8s %s", name, spec.Type, canonical)
		if len(aliases) > 1 {
			fmt.Printf(" (aliases: %v)", aliases)
		}
		if spec.Required {
			fmt.Print(" required")
		}
		if spec.Default != nil {
			fmt.Printf(" default=%v", spec.Default)
		}
		fmt.Println()
	}
	return nil
}
