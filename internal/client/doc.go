// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the account service.
//
// Each subcommand maps to one REST call made through [adapter.ServerAdapter]
// and prints the JSON result.
package client
