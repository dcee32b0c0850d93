package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/lifecycle"
	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/services"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

const (
	flagConfigFile = "config-file"
	runCommandName = "run"
)

var loadSnap = func() (*snap.Snap, error) {
	return snap.FromEnv(snap.RealSystem{})
}

var (
	lookupEnv                         = os.LookupEnv
	serviceData lifecycle.ServiceData = lifecycle.Generic{}
	registry                          = services.DefaultRegistry()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.PersistentFlags().String(flagConfigFile, "", messages.RootConfigFileFlag)

	cmd.AddCommand(
		newInstallCmd(),
		newConfigureCmd(),
		newRunCmd(),
		newServicesCmd(),
		newDoctorCmd(),
	)
	return cmd
}

// resolveSnap loads the snap environment and applies the --config-file override.
func resolveSnap(cmd *cobra.Command) (*snap.Snap, error) {
	s, err := loadSnap()
	if err != nil {
		return nil, fmt.Errorf(messages.RootSnapEnvFailedFmt, err)
	}
	path, err := cmd.Flags().GetString(flagConfigFile)
	if err != nil {
		return nil, err
	}
	if path = strings.TrimSpace(path); path != "" {
		s.Config = config.FileStore{Path: path}
	}
	return s, nil
}

// logConfig returns the console logging configuration for cmd.
func logConfig(cmd *cobra.Command) *log.Config {
	cfg := log.FromEnv(lookupEnv)
	cfg.Output = cmd.ErrOrStderr()
	return cfg
}
