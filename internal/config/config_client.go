// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// DefaultClientRequestTimeout is used when neither env nor flags set one.
const DefaultClientRequestTimeout = 10 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the REST API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig builds the client configuration from ADAPTER_* environment
// variables and the -a / -timeout flags found in args. Flags win over the
// environment. The arguments left after flag parsing are returned so the
// caller can dispatch a subcommand.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("go-account-client", flag.ContinueOnError)
	address := fs.String("a", envCfg.Adapter.HTTPAddress, "Server address")
	timeout := fs.Duration("timeout", envCfg.Adapter.RequestTimeout, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    *address,
			RequestTimeout: *timeout,
		},
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return clientCfg, fs.Args(), clientCfg.validate()
}
