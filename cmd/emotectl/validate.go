package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every log message of every emote can be rendered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.service(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			report, err := svc.Validate(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, f := range report.Failures {
				kind := "untargeted"
				if f.Targeted {
					kind = "targeted"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", f.EmoteID, f.Command, f.Language, kind, f.Err)
			}
			fmt.Fprintf(w, "%d checked, %d failed\n", report.Checked, len(report.Failures))
			if !report.OK() {
				return fmt.Errorf("%d log messages are invalid", len(report.Failures))
			}
			return nil
		},
	}
}

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known emotes and their commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.service(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			emotes, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range emotes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", e.ID, e.Name, strings.Join(e.Commands, " "))
			}
			return nil
		},
	}
}
