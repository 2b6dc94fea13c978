// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"strings"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/spf13/cobra"
)

func newProjectCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "List and edit projects",
	}
	cmd.AddCommand(
		newProjectListCmd(c),
		newProjectAddCmd(c),
		newProjectArchiveCmd(c),
		newProjectRmCmd(c),
	)
	return cmd
}

func newProjectListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}
			projects, err := c.app.Services.Projects.GetAll(ctx)
			if err != nil {
				return err
			}
			return c.print(cmd, projects, func() string { return renderProjectList(projects) })
		},
	}
}

func newProjectAddCmd(c *cli) *cobra.Command {
	var kanban bool

	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			project := models.Project{Name: strings.Join(args, " ")}
			if kanban {
				project.ViewMode = models.ViewKanban
			}

			created, err := c.app.Services.Projects.Create(ctx, project)
			if err != nil {
				return err
			}
			return c.print(cmd, created, func() string {
				return okStyle.Render("created: ") + created.Name + "  " + faintStyle.Render(created.ID)
			})
		},
	}

	cmd.Flags().BoolVar(&kanban, "kanban", false, "create with the kanban view")
	return cmd
}

func newProjectArchiveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <project>",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			project, err := c.resolveProject(cmd, args[0])
			if err != nil {
				return err
			}
			archived, err := c.app.Services.Projects.Archive(ctx, project.ID)
			if err != nil {
				return err
			}
			cmd.Println(warnStyle.Render("archived: ") + archived.Name)
			return nil
		},
	}
}

func newProjectRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <project>",
		Short: "Delete a project and every task in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			project, err := c.resolveProject(cmd, args[0])
			if err != nil {
				return err
			}
			if err := c.app.Services.Projects.Delete(ctx, project.ID); err != nil {
				return err
			}
			cmd.Println(warnStyle.Render("deleted: ") + project.Name)
			return nil
		},
	}
}
