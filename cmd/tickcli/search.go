// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keywords>...",
		Short: "Search tasks and tags server-side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			results, err := c.app.Services.Search.All(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			names, err := c.projectNames(cmd)
			if err != nil {
				return err
			}
			return c.print(cmd, results, func() string {
				var b strings.Builder
				b.WriteString(titleStyle.Render("Tasks") + "\n")
				b.WriteString(renderTaskList(results.Tasks, names))
				if len(results.Tags) > 0 {
					b.WriteString("\n\n" + titleStyle.Render("Tags") + "\n")
					b.WriteString(renderTagList(results.Tags))
				}
				return b.String()
			})
		},
	}
}
