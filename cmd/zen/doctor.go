package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/doctor"
	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			profileDir, err := resolveProfile()
			if err != nil {
				return err
			}
			settings, err := loadSettings(config.SettingsPath(profileDir))
			if err != nil {
				return err
			}
			layout, err := install.LayoutByName(settings.Layout)
			if err != nil {
				return err
			}
			paths := config.PathsUnder(profileDir, layout.DirName)

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, profileDir)

			var results []doctor.Result
			results = append(results, doctor.CheckTool())
			results = append(results, doctor.CheckStructure(paths, layout)...)
			results = append(results, doctor.CheckRegistration(paths, layout.Sentinel()))

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprint(out, messages.DoctorChecksFailed)
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprint(out, messages.DoctorAllChecksPassed)
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendFmt, r.Recommendation)
	}
}
