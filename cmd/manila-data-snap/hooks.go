package main

import (
	"github.com/spf13/cobra"

	"github.com/openstack-snaps/manila-data/internal/lifecycle"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

var (
	installHook   = lifecycle.InstallHook
	configureHook = lifecycle.ConfigureHook
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSnap(cmd)
			if err != nil {
				return err
			}
			return installHook(cmd.Context(), s, serviceData, lifecycle.HookOptions{Log: logConfig(cmd)})
		},
	}
}

func newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigureUse,
		Short: messages.ConfigureShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSnap(cmd)
			if err != nil {
				return err
			}
			return configureHook(cmd.Context(), s, serviceData, lifecycle.HookOptions{Log: logConfig(cmd)})
		},
	}
}
