// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// TokenEnv is read by the users command when -token is not given.
const TokenEnv = "ACCOUNT_TOKEN"

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

// App runs one subcommand per invocation.
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	getenv  func(string) string

	commands map[string]command

	logger *logger.Logger
}

// NewApp builds an [App] writing results to out. getenv is used to look up
// [TokenEnv].
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, getenv func(string) string, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		out:     out,
		getenv:  getenv,
		logger:  logger,
	}

	a.commands = map[string]command{
		"register": {usage: "register -name NAME -email EMAIL -password PASSWORD", run: a.register},
		"activate": {usage: "activate -email EMAIL -code CODE", run: a.activate},
		"login":    {usage: "login -email EMAIL -password PASSWORD", run: a.login},
		"reset":    {usage: "reset -email EMAIL", run: a.reset},
		"change":   {usage: "change -email EMAIL -code CODE -password NEW_PASSWORD", run: a.change},
		"users":    {usage: "users [-token TOKEN]", run: a.users},
		"version":  {usage: "version", run: a.version},
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return cmd.run(ctx, fs, args[1:])
}

// Usage lists every subcommand.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("usage:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	return b.String()
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.RegisterRequest
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) activate(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.ActivateRequest
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.ActivationCode, "code", "", "activation code from the email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := a.adapter.Activate(ctx, req)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(models.TokenResponse{Token: token})
}

func (a *App) reset(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.ResetRequest
	fs.StringVar(&req.Email, "email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.RequestReset(ctx, req); err != nil {
		return err
	}
	return a.print(models.SuccessResponse{Success: true})
}

func (a *App) change(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.ChangePasswordRequest
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.ResetCode, "code", "", "reset code from the email")
	fs.StringVar(&req.NewPassword, "password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := a.adapter.ChangePassword(ctx, req)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) users(ctx context.Context, fs *flag.FlagSet, args []string) error {
	token := fs.String("token", a.getenv(TokenEnv), "bearer token from login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.adapter.SetToken(*token)
	accounts, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(accounts)
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
