package main

import (
	"fmt"
	"io"

	"github.com/Defacto2/repkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the saved settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return show(cmd.OutOrStdout(), a.settings)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file path",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), a.path)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Replace the saved settings with the defaults",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := config.Reset(a.path)
				if err != nil {
					return err
				}
				a.settings = s
				fmt.Fprintf(cmd.OutOrStdout(), "settings reset: %s\n", a.path)
				return nil
			},
		},
	)
	return cmd
}

// show prints the settings as YAML with the keys sorted.
func show(w io.Writer, s config.Settings) error {
	b, err := yaml.Marshal(s.Map())
	if err != nil {
		return fmt.Errorf("show settings %w", err)
	}
	_, err = w.Write(b)
	return err
}
