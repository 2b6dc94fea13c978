// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/spf13/cobra"
)

func newSyncCmd(c *cli) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronise with the service",
		Long:  "Runs a delta sync from the stored checkpoint, or a full sync with --full.\nA delta response only carries collections that changed since the checkpoint.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.EnsureSession(ctx); err != nil {
				return err
			}

			var (
				snap *models.Snapshot
				err  error
			)
			if full {
				snap, err = c.app.Services.Sync.FullSync(ctx)
			} else {
				snap, err = c.app.Services.Sync.DeltaSync(ctx)
			}
			if err != nil {
				return err
			}

			return c.print(cmd, snap, func() string {
				kind := "delta"
				if full {
					kind = "full"
				}
				changed := 0
				for _, key := range []models.CollectionKey{
					models.CollectionTasks,
					models.CollectionProjects,
					models.CollectionGroups,
					models.CollectionTags,
					models.CollectionFilters,
				} {
					if snap.Has(key) {
						changed++
					}
				}
				return fmt.Sprintf("%s sync done, checkpoint %d, %d collection(s) in response",
					kind, snap.Checkpoint, changed)
			})
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "force a full sync from checkpoint 0")
	return cmd
}
