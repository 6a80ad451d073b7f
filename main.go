package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/day0ops/coffeeshop/envconfig/pkg/authz"
	"github.com/day0ops/coffeeshop/envconfig/pkg/config"
	"github.com/day0ops/coffeeshop/envconfig/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(start(os.Args[1:], os.Stdout, os.LookupEnv))
}

func start(args []string, stdout io.Writer, lookup config.LookupFunc) int {
	l := logger.Get()

	defaultTarget := string(config.DefaultTarget)
	if v, ok := lookup(config.EnvDeployTarget); ok && v != "" {
		defaultTarget = v
	}
	defaultFile, _ := lookup(config.EnvConfigFile)

	fs := flag.NewFlagSet("envconfig", flag.ContinueOnError)
	target := fs.String("target", defaultTarget, "deployment target to resolve")
	file := fs.String("config", defaultFile, "YAML file with additional environment bundles")
	format := fs.String("format", config.DefaultFormat, "output format: json or ts")
	out := fs.String("out", "", "write the bundle to this file instead of stdout")
	check := fs.Bool("check", false, "validate every registered bundle and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *format != "json" && *format != "ts" {
		l.Error("invalid format specified", zap.String("format", *format))
		fs.Usage()
		return 2
	}

	provider, err := config.Load(config.Sources{
		File:   *file,
		Target: config.Target(*target),
		Lookup: lookup,
	})
	if err != nil {
		l.Error("unable to load environment bundles", zap.Error(err))
		return 1
	}

	if *check {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()
		if err := checkAll(logger.WithCtx(ctx, l), provider); err != nil {
			l.Error("bundle check failed", zap.Error(err))
			return 1
		}
		return 0
	}

	env, err := provider.Get(config.Target(*target))
	if err != nil {
		if errors.Is(err, config.ErrConfigurationMissing) {
			l.Error("no configuration for deployment target",
				zap.String("target", *target),
				zap.Any("registered", provider.Targets()))
		} else {
			l.Error("unable to resolve configuration", zap.Error(err))
		}
		return 1
	}

	doc, err := render(env, *format)
	if err != nil {
		l.Error("unable to render configuration", zap.Error(err))
		return 1
	}

	if *out == "" {
		if _, err := stdout.Write(doc); err != nil {
			l.Error("unable to write configuration", zap.Error(err))
			return 1
		}
	} else if err := os.WriteFile(*out, doc, 0o644); err != nil {
		l.Error(fmt.Sprintf("unable to write file: %s", *out), zap.Error(err))
		return 1
	}

	l.Info("resolved configuration",
		zap.String("target", *target),
		zap.Bool("production", env.Production),
		zap.String("apiServerUrl", env.APIServerURL))
	return 0
}

// render encodes env in the shape the front-end build expects.
func render(env config.Environment, format string) ([]byte, error) {
	body, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, err
	}
	if format == "ts" {
		return []byte(fmt.Sprintf("export const environment = %s;\n", body)), nil
	}
	return append(body, '\n'), nil
}

// checkAll resolves every registered target concurrently and rejects
// production bundles that still point at plain http or loopback hosts.
func checkAll(ctx context.Context, provider *config.Provider) error {
	l := logger.FromCtx(ctx)
	eg, ctx := errgroup.WithContext(ctx)

	for _, target := range provider.Targets() {
		target := target
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env, err := provider.Get(target)
			if err != nil {
				return err
			}
			if err := config.CheckProduction(env); err != nil {
				return fmt.Errorf("target %q: %w", target, err)
			}
			login := authz.NewClient(env).LoginURL("check")
			l.Info("bundle ok", zap.String("target", string(target)), zap.String("loginUrl", login))
			return nil
		})
	}
	return eg.Wait()
}
