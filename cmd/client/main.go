package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/adapter"
	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/MKhiriev/go-notes-auth/models"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoEmail = errors.New("-email is required")

type options struct {
	email    string
	password string
	register bool
	me       bool
	copy     bool
	version  bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("notes-auth-client", flag.ContinueOnError)
	fs.StringVar(&opts.email, "email", "", "account email")
	fs.StringVar(&opts.password, "password", os.Getenv("NOTES_PASSWORD"), "account password (default $NOTES_PASSWORD)")
	fs.BoolVar(&opts.register, "register", false, "create the account before logging in")
	fs.BoolVar(&opts.me, "me", false, "print the identity of the issued access token")
	fs.BoolVar(&opts.copy, "copy", false, "copy the access token to the clipboard")
	fs.BoolVar(&opts.version, "server-version", false, "print the server version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.email == "" && !opts.version {
		return options{}, errNoEmail
	}

	return opts, nil
}

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("notes-auth-client")

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, serverAdapter, opts, os.Stdout, clipboard.WriteAll); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run logs in (registering first if asked) and prints the issued tokens.
func run(ctx context.Context, a adapter.ServerAdapter, opts options, out io.Writer, copyToClipboard func(string) error) error {
	if opts.version {
		version, err := a.Version(ctx)
		if err != nil {
			return fmt.Errorf("server version: %w", err)
		}
		fmt.Fprintf(out, "Server version: %s\n", version)
		return nil
	}

	var (
		result models.LoginResult
		err    error
	)
	if opts.register {
		result, err = a.Register(ctx, models.RegisterRequest{Email: opts.email, Password: opts.password})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
	} else {
		result, err = a.Login(ctx, models.LoginRequest{Email: opts.email, Password: opts.password})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	fmt.Fprintln(out, result.Message)
	fmt.Fprintf(out, "Access token:  %s\n", result.AccessToken)
	fmt.Fprintf(out, "Refresh token: %s\n", result.RefreshToken)

	if claims, err := utils.ParseUnverifiedClaims(result.AccessToken); err == nil && claims.ExpiresAt != nil {
		fmt.Fprintf(out, "Expires at:    %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	if opts.me {
		identity, err := a.Me(ctx)
		if err != nil {
			return fmt.Errorf("me: %w", err)
		}
		fmt.Fprintf(out, "Signed in as:  %s (id %d)\n", identity.Email, identity.UserID)
	}

	if opts.copy {
		if err := copyToClipboard(result.AccessToken); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(out, "Access token copied to clipboard")
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
