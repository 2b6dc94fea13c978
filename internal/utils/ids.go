// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// ObjectID returns a new 24-character lowercase hex identifier in the format
// the task service assigns to records: a 4-byte big-endian unix timestamp
// followed by 8 random bytes.
//
// Records submitted in a batch add are keyed by id in the server receipt, so
// the SDK assigns ids client-side before submission to make the receipt
// attributable to individual records.
func ObjectID() string {
	var raw [12]byte

	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp-derived tail rather than returning an error nobody can act on.
		binary.BigEndian.PutUint64(raw[4:], uint64(time.Now().UnixNano()))
	}

	return hex.EncodeToString(raw[:])
}

// TodayStamp returns the current day as the YYYYMMDD stamp habit check-ins
// are keyed by.
func TodayStamp() string {
	return time.Now().Format("20060102")
}
