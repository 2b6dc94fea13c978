// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/spf13/cobra"
)

func newHabitCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits"},
		Short:   "List habits and record check-ins",
	}
	cmd.AddCommand(
		newHabitListCmd(c),
		newHabitCheckinCmd(c),
	)
	return cmd
}

func newHabitListCmd(c *cli) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			var (
				habits []models.Habit
				err    error
			)
			if all {
				habits, err = c.app.Services.Habits.GetAll(ctx)
			} else {
				habits, err = c.app.Services.Habits.Active(ctx)
			}
			if err != nil {
				return err
			}
			return c.print(cmd, habits, func() string { return renderHabitList(habits) })
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include archived habits")
	return cmd
}

func newHabitCheckinCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin <habit>",
		Short: "Record today's check-in for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			habit, err := c.resolveHabit(cmd, args[0])
			if err != nil {
				return err
			}
			recorded, err := c.app.Services.Habits.Checkin(ctx, models.HabitCheckin{HabitID: habit.ID})
			if err != nil {
				return err
			}
			cmd.Println(okStyle.Render("checked in: ") + habit.Name + "  " + faintStyle.Render(recorded.CheckinStamp))
			return nil
		},
	}
}

// resolveHabit finds a habit by id or case-insensitive name.
func (c *cli) resolveHabit(cmd *cobra.Command, ref string) (models.Habit, error) {
	habits, err := c.app.Services.Habits.GetAll(cmd.Context())
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.ID == ref || strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
}
