// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/spf13/cobra"
)

func newTagCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "List and edit tags",
	}
	cmd.AddCommand(
		newTagListCmd(c),
		newTagAddCmd(c),
		newTagRenameCmd(c),
		newTagRmCmd(c),
	)
	return cmd
}

func newTagListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}
			tags, err := c.app.Services.Tags.GetAll(ctx)
			if err != nil {
				return err
			}
			return c.print(cmd, tags, func() string { return renderTagList(tags) })
		},
	}
}

func newTagAddCmd(c *cli) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			var (
				created models.Tag
				err     error
			)
			if parent != "" {
				created, err = c.app.Services.Tags.CreateChild(ctx, parent, args[0])
			} else {
				created, err = c.app.Services.Tags.Create(ctx, models.Tag{Name: args[0]})
			}
			if err != nil {
				return err
			}
			cmd.Println(okStyle.Render("created: ") + "@" + created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "create as a sub-tag of this tag")
	return cmd
}

func newTagRenameCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a tag account-wide",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			renamed, err := c.app.Services.Tags.Rename(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(okStyle.Render("renamed to: ") + "@" + renamed.Name)
			return nil
		},
	}
}

func newTagRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			if err := c.app.Services.Tags.Delete(ctx, args[0]); err != nil {
				return err
			}
			cmd.Println(warnStyle.Render("deleted: ") + "@" + args[0])
			return nil
		},
	}
}
