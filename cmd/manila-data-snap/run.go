package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openstack-snaps/manila-data/internal/lifecycle"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/services"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

var runService = lifecycle.RunService

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			s, err := resolveSnap(cmd)
			if err != nil {
				return err
			}
			code, err := runService(cmd.Context(), s, svc, lifecycle.ServiceOptions{
				Log: logConfig(cmd),
				Run: services.RunOptions{
					Stdin:  cmd.InOrStdin(),
					Stdout: cmd.OutOrStdout(),
					Stderr: cmd.ErrOrStderr(),
				},
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ServicesUse,
		Short: messages.ServicesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := snap.Paths{Snap: "$SNAP", Common: "$SNAP_COMMON"}
			if s, err := loadSnap(); err == nil {
				paths = s.Paths
			}
			out := cmd.OutOrStdout()
			for _, svc := range registry.All() {
				_, _ = fmt.Fprintf(out, messages.ServicesLineFmt, svc.Name, strings.Join(services.CommandLine(svc, paths), " "))
			}
			return nil
		},
	}
}
