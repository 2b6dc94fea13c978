// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign on and persist the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.app.EnsureSession(cmd.Context())
			if err != nil {
				return err
			}
			if session.Username == "" {
				cmd.Println(okStyle.Render("using Open API token session"))
				return nil
			}
			cmd.Println(okStyle.Render(fmt.Sprintf("signed on as %s", session.Username)))
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session and checkpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			cmd.Println(okStyle.Render("logged out"))
			return nil
		},
	}
}
