// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/client"
	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/spf13/cobra"
)

// cli carries the flag values and the wired app across command runs.
type cli struct {
	app *client.App

	configPath string
	baseURL    string
	username   string
	password   string
	apiToken   string
	dbPath     string
	logLevel   string
	jsonOut    bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "tickcli",
		Short:         "Command-line client for the TickTick task service",
		Long:          "tickcli syncs, queries, and edits tasks, projects, tags, and habits\nthrough the TickTick batch API with a local sync checkpoint.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The version command works without configuration or network.
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return c.initApp(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a JSON configuration file")
	flags.StringVar(&c.baseURL, "base-url", "", "task service base URL")
	flags.StringVar(&c.username, "username", "", "account email for password sign-on")
	flags.StringVar(&c.password, "password", "", "account password for password sign-on")
	flags.StringVar(&c.apiToken, "api-token", "", "Open API token (restricted write surface)")
	flags.StringVar(&c.dbPath, "db", "", "path to the local session database (empty: in-memory)")
	flags.StringVar(&c.logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	flags.BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newSyncCmd(c),
		newTaskCmd(c),
		newProjectCmd(c),
		newTagCmd(c),
		newHabitCmd(c),
		newSearchCmd(c),
		newVersionCmd(),
	)

	return root
}

// initApp merges flag overrides into the configuration and wires the app.
func (c *cli) initApp(cmd *cobra.Command) error {
	overrides := &config.StructuredConfig{
		App: config.App{
			Username: c.username,
			Password: c.password,
			APIToken: c.apiToken,
			Version:  buildVersion,
		},
		Adapter: config.Adapter{BaseURL: c.baseURL},
		Storage: config.Storage{DB: config.DB{DSN: c.dbPath}},
		Log:     config.Log{Level: c.logLevel},
		Workers: config.Workers{SyncInterval: 5 * time.Minute},

		JSONFilePath: c.configPath,
	}

	cfg, err := config.GetStructuredConfig(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	c.app, err = client.NewApp(cmd.Context(), cfg)
	return err
}

// print renders v as JSON when --json is set, otherwise through render.
func (c *cli) print(cmd *cobra.Command, v any, render func() string) error {
	if c.jsonOut {
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(raw))
		return nil
	}
	cmd.Println(render())
	return nil
}
