// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the account service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, response compression, bearer authentication and input
// validation are handled here before requests reach the service layer.
package http
