// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The session table holds at most one row, pinned to id = 1.
const (
	saveSession = `
		INSERT INTO session (
			id,
			username,
			token,
			device_id,
			inbox_id,
			checkpoint,
			updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			username   = excluded.username,
			token      = excluded.token,
			device_id  = excluded.device_id,
			inbox_id   = excluded.inbox_id,
			checkpoint = excluded.checkpoint,
			updated_at = excluded.updated_at;`

	loadSession = `
		SELECT
			username,
			token,
			device_id,
			inbox_id,
			checkpoint,
			updated_at
		FROM session
		WHERE id = 1;`

	updateSessionCheckpoint = `
		UPDATE session SET
			checkpoint = $1,
			updated_at = $2
		WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
