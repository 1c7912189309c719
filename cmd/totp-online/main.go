// Command totp-online serves the TOTP Online page.
//
// Usage:
//
//	totp-online [serve]          run the HTTP server (default)
//	totp-online locales [-json]  report locale completeness, exit 1 on mismatch
//	totp-online version          print the resolved version
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

	"github.com/matiboux/totp-online/app"
	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/app/site"
	"github.com/matiboux/totp-online/core/config"
	"github.com/matiboux/totp-online/core/logger"
)

// Set at link time:
//
//	-ldflags "-X main.commitSHA=$GITHUB_SHA -X main.versionTag=$VERSION_TAG"
var (
	commitSHA     string
	versionTag    string
	repositoryURL string
)

// errIncomplete makes the process exit 1 without printing twice.
var errIncomplete = errors.New("locales do not match the key set")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errIncomplete) {
			fmt.Fprintln(os.Stderr, "totp-online:", err)
		}
		os.Exit(1)
	}
}

func buildInfo() site.Config {
	return site.Config{
		RepositoryURL: repositoryURL,
		CommitSHA:     commitSHA,
		VersionTag:    versionTag,
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return serve(args, stderr)
	case "locales":
		return localesStatus(args, stdout, stderr)
	case "version":
		return version(stdout)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: totp-online [serve | locales [-json] | version]")
}

func serve(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(app.WithBuildInfo(buildInfo()))
	if err != nil {
		return err
	}
	if err := a.Run(ctx); err != nil {
		a.Logger().Error("server stopped", logger.Error(err))
		return err
	}
	return nil
}

func localesStatus(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("locales", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "write the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rep := locales.Status()
	write := rep.WriteText
	if *asJSON {
		write = rep.WriteJSON
	}
	if err := write(stdout); err != nil {
		return err
	}
	if !rep.Complete() {
		return errIncomplete
	}
	return nil
}

func version(stdout io.Writer) error {
	var cfg app.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	meta := cfg.Site.Or(buildInfo())
	_, err := fmt.Fprintln(stdout, site.ResolveVersion(meta.CommitSHA, meta.VersionTag))
	return err
}
