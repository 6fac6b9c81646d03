package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"multiselect/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the multiselect config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings.

The file is written to --config, or to the per-user config directory.
An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfig(opts.configPath, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// initConfig writes the default config and returns where it went
func initConfig(path string, force bool) (string, error) {
	svc := config.NewConfigServiceWithBus(path, nil)

	if !force {
		_, err := svc.LoadFromPath(svc.Path())
		if err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		}
		if !errors.Is(err, config.ErrNotFound) {
			return "", err
		}
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return svc.Path(), nil
}
