package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/winform/lint"
)

func newLintCmd() *cobra.Command {
	var failOnWarning bool

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Check designer files for structural problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			warnings := 0
			for _, path := range args {
				doc, _, err := parseArg(path)
				if err != nil {
					return err
				}
				for _, issue := range lint.Check(doc) {
					if cfg.Lint.Disables(issue.Rule) {
						continue
					}
					printIssue(path, issue)
					if issue.Severity >= lint.SeverityWarning {
						warnings++
					}
				}
			}

			if failOnWarning && warnings > 0 {
				return fmt.Errorf("%d warning(s)", warnings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnWarning, "fail-on-warning", false, "exit non-zero when warnings are found")

	return cmd
}

var severityColors = map[lint.Severity]*color.Color{
	lint.SeverityInfo:    color.New(color.FgCyan),
	lint.SeverityWarning: color.New(color.FgYellow),
	lint.SeverityError:   color.New(color.FgRed, color.Bold),
}

func printIssue(path string, issue lint.Issue) {
	c, ok := severityColors[issue.Severity]
	if !ok {
		c = color.New()
	}
	target := issue.Node
	if target == "" {
		target = "(form)"
	}
	fmt.Printf("%s: %s: %s %s\n",
		path,
		c.Sprint(issue.Severity),
		color.New(color.Bold).Sprint(target),
		issue.Message,
	)
}
