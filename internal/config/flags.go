// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-reset-code-duration reset code lifetime (e.g., "60m")
//	-code-length length of generated one-time codes
//	-bcrypt-cost bcrypt work factor
//	-generic-auth-errors hide the reason of failed logins
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-mail-host SMTP host
//	-mail-port SMTP port
//	-mail-from sender address
//	-mail-async deliver codes asynchronously
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-account-keeper", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, resetCodeDuration, requestTimeout time.Duration
	var codeLength, bcryptCost int
	var genericAuthErrors bool
	var logLevel string
	var mailHost, mailFrom string
	var mailPort int
	var mailAsync bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&resetCodeDuration, "reset-code-duration", 0, "Reset code lifetime (e.g., 60m)")
	fs.IntVar(&codeLength, "code-length", 0, "Length of generated one-time codes")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.BoolVar(&genericAuthErrors, "generic-auth-errors", false, "Report every failed login as invalid credentials")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&mailHost, "mail-host", "", "SMTP host")
	fs.IntVar(&mailPort, "mail-port", 0, "SMTP port")
	fs.StringVar(&mailFrom, "mail-from", "", "Sender address")
	fs.BoolVar(&mailAsync, "mail-async", false, "Deliver codes asynchronously")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			ResetCodeDuration: resetCodeDuration,
			CodeLength:        codeLength,
			BcryptCost:        bcryptCost,
			GenericAuthErrors: genericAuthErrors,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Host:  mailHost,
			Port:  mailPort,
			From:  mailFrom,
			Async: mailAsync,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost", empty or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portString, found := strings.Cut(s, ":")
	if !found || strings.Contains(portString, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
