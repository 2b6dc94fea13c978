// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"
)

func newTaskCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "List and edit tasks",
	}
	cmd.AddCommand(
		newTaskListCmd(c),
		newTaskAddCmd(c),
		newTaskDoneCmd(c),
		newTaskRmCmd(c),
	)
	return cmd
}

func newTaskListCmd(c *cli) *cobra.Command {
	var (
		projectName string
		tag         string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			query := models.TaskQuery{}
			if projectName != "" {
				project, err := c.resolveProject(cmd, projectName)
				if err != nil {
					return err
				}
				query.ProjectID = &project.ID
			}
			if tag != "" {
				query.Tag = &tag
			}
			if priority != "" {
				level, err := parsePriority(priority)
				if err != nil {
					return err
				}
				query.Priority = &level
			}

			tasks, err := c.app.Services.Tasks.Query(ctx, query)
			if err != nil {
				return err
			}

			names, err := c.projectNames(cmd)
			if err != nil {
				return err
			}
			return c.print(cmd, tasks, func() string { return renderTaskList(tasks, names) })
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "filter by project name or id")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "filter by tag name")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority (none, low, medium, high)")
	return cmd
}

func newTaskAddCmd(c *cli) *cobra.Command {
	var (
		projectName string
		due         string
		priority    string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			task := models.Task{
				Title: strings.Join(args, " "),
				Tags:  tags,
			}

			if projectName != "" {
				project, err := c.resolveProject(cmd, projectName)
				if err != nil {
					return err
				}
				task.ProjectID = project.ID
			}
			if priority != "" {
				level, err := parsePriority(priority)
				if err != nil {
					return err
				}
				task.Priority = level
			}
			if due != "" {
				dueTime, err := parseDue(due)
				if err != nil {
					return err
				}
				task.DueDate = dueTime
			}

			created, err := c.app.Services.Tasks.Create(ctx, task)
			if err != nil {
				return err
			}

			names, err := c.projectNames(cmd)
			if err != nil {
				return err
			}
			return c.print(cmd, created, func() string { return renderTask(created, names) })
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "project name or id (default: inbox)")
	cmd.Flags().StringVarP(&due, "due", "d", "", `due date, natural language ("tomorrow 9am") or YYYY-MM-DD`)
	cmd.Flags().StringVar(&priority, "priority", "", "priority (none, low, medium, high)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag names (repeatable)")
	return cmd
}

func newTaskDoneCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			task, err := c.resolveTask(cmd, args[0])
			if err != nil {
				return err
			}
			done, err := c.app.Services.Tasks.Complete(ctx, task.ID, task.ProjectID)
			if err != nil {
				return err
			}
			cmd.Println(okStyle.Render("done: ") + done.Title)
			return nil
		},
	}
}

func newTaskRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			task, err := c.resolveTask(cmd, args[0])
			if err != nil {
				return err
			}
			if err := c.app.Services.Tasks.Delete(ctx, task.ID, task.ProjectID); err != nil {
				return err
			}
			cmd.Println(warnStyle.Render("deleted: ") + task.Title)
			return nil
		},
	}
}

// resolveTask finds an open task by id, or by unambiguous title prefix as a
// convenience.
func (c *cli) resolveTask(cmd *cobra.Command, ref string) (models.Task, error) {
	tasks, err := c.app.Services.Tasks.GetAll(cmd.Context())
	if err != nil {
		return models.Task{}, err
	}

	var byTitle []models.Task
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(strings.ToLower(t.Title), strings.ToLower(ref)) {
			byTitle = append(byTitle, t)
		}
	}
	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return models.Task{}, fmt.Errorf("%q matches %d tasks, use the task id", ref, len(byTitle))
	}
	return models.Task{}, fmt.Errorf("no open task matches %q", ref)
}

// resolveProject finds a project by id or case-insensitive name.
func (c *cli) resolveProject(cmd *cobra.Command, ref string) (models.Project, error) {
	projects, err := c.app.Services.Projects.GetAll(cmd.Context())
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if p.ID == ref || strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("no project matches %q", ref)
}

func (c *cli) projectNames(cmd *cobra.Command) (map[string]string, error) {
	projects, err := c.app.Services.Projects.GetAll(cmd.Context())
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

func parsePriority(raw string) (int, error) {
	switch strings.ToLower(raw) {
	case "none":
		return models.PriorityNone, nil
	case "low":
		return models.PriorityLow, nil
	case "medium":
		return models.PriorityMedium, nil
	case "high":
		return models.PriorityHigh, nil
	}
	return 0, fmt.Errorf("unknown priority %q (want none, low, medium, or high)", raw)
}

// parseDue understands natural-language dates ("tomorrow 9am", "next
// friday") and plain YYYY-MM-DD.
func parseDue(raw string) (*models.Time, error) {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	result, err := parser.Parse(raw, time.Now())
	if err == nil && result != nil {
		due := models.NewTime(result.Time)
		return &due, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("unrecognized due date %q", raw)
	}
	due := models.NewTime(parsed)
	return &due, nil
}
