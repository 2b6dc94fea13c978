// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the SDK.
//
// It wires configuration, logging, the local session store, the HTTP
// transport, the service façades, and the background sync worker into one
// App that the CLI (or any embedding program) drives.
package client
