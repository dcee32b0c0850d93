package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openstack-snaps/manila-data/internal/doctor"
	"github.com/openstack-snaps/manila-data/internal/lifecycle"
	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

const (
	flagDiffMaxLines    = "diff-max-lines"
	defaultDiffMaxLines = 40
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			maxLines, err := cmd.Flags().GetInt(flagDiffMaxLines)
			if err != nil {
				return err
			}
			s, err := resolveSnap(cmd)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, s.Name, s.Paths.Common)

			logger := log.WithComponent(log.New(logConfig(cmd)), messages.DoctorUse)
			manager := lifecycle.NewManager(s, serviceData, lifecycle.Options{Logger: logger})
			results := doctor.Run(cmd.Context(), s, serviceData, manager, maxLines)
			for _, r := range results {
				printResult(out, r)
			}

			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			if doctor.HasWarning(results) {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorWarningSummary))
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().Int(flagDiffMaxLines, defaultDiffMaxLines, messages.DoctorFlagDiffMaxLines)
	return cmd
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
		printRecommendation(out, r.Recommendation)
	}
	if r.Detail != "" {
		for _, line := range strings.Split(r.Detail, "\n") {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorDetailIndent, line)
		}
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
