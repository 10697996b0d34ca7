// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-npmrc/internal/config"
	"github.com/MKhiriev/go-npmrc/internal/logger"
	"github.com/MKhiriev/go-npmrc/internal/registry"
	"github.com/MKhiriev/go-npmrc/internal/report"
	"github.com/MKhiriev/go-npmrc/models"
)

var errKeyNotFound = errors.New("key not found")

// cli holds the flag values and collaborators shared by every command.
type cli struct {
	stdout     io.Writer
	stderr     io.Writer
	buildInfo  models.AppBuildInfo
	loaderOpts []config.Option

	cwd          string
	prefix       string
	globalConfig string
	userConfig   string
	file         string
	noProject    bool
	noUser       bool
	noGlobal     bool
	verbose      bool
	asJSON       bool
}

func newCLI(stdout, stderr io.Writer, info models.AppBuildInfo, opts ...config.Option) *cli {
	return &cli{stdout: stdout, stderr: stderr, buildInfo: info, loaderOpts: opts}
}

func (c *cli) load(ctx context.Context) (*config.Config, error) {
	log := logger.FromContext(ctx)
	loader := config.NewLoader(append([]config.Option{config.WithLogger(log)}, c.loaderOpts...)...)

	if c.file != "" {
		return loader.LoadFromFile(c.file)
	}

	return loader.Load(config.LoadOptions{
		Cwd:          c.cwd,
		GlobalPrefix: c.prefix,
		GlobalConfig: c.globalConfig,
		UserConfig:   c.userConfig,
		SkipProject:  c.noProject,
		SkipUser:     c.noUser,
		SkipGlobal:   c.noGlobal,
	})
}

func (c *cli) printer() *report.Printer {
	return report.New(c.stdout)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "npmrc",
		Short: "Resolve npm registries and credentials from .npmrc files",
		Long: `npmrc reads the global, user and project .npmrc files the way npm does
and answers which registry serves a package and which credentials apply to it.

Secrets are never printed.`,
		Version:       versionString(c.buildInfo),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		log := logger.NewConsoleLogger("npmrc", c.stderr, c.verbose)
		cmd.SetContext(log.WithContext(cmd.Context()))
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cwd, "cwd", "", "directory to start the project root search from")
	flags.StringVar(&c.prefix, "prefix", "", "npm global prefix (default: derived from node)")
	flags.StringVar(&c.globalConfig, "globalconfig", "", "global config file (default: {prefix}/etc/npmrc)")
	flags.StringVar(&c.userConfig, "userconfig", "", "user config file (default: ~/.npmrc)")
	flags.StringVarP(&c.file, "file", "f", "", "read only this file, skipping layer discovery")
	flags.BoolVar(&c.noProject, "no-project", false, "ignore the project .npmrc")
	flags.BoolVar(&c.noUser, "no-user", false, "ignore the user .npmrc")
	flags.BoolVar(&c.noGlobal, "no-global", false, "ignore the global npmrc")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log layer discovery and credential selection")
	flags.BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		newGetCmd(c),
		newRegistryCmd(c),
		newCredentialsCmd(c),
		newScopesCmd(c),
		newLayersCmd(c),
		newVersionCmd(c),
	)

	return root
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a config key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			value, ok := cfg.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errKeyNotFound, args[0])
			}
			return c.printer().Value(value)
		},
	}
}

func newRegistryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "registry [package]",
		Short: "Print the registry that serves a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			pkg, u := "", cfg.DefaultRegistry()
			if len(args) == 1 {
				pkg, u = args[0], cfg.RegistryFor(args[0])
			}

			if c.asJSON {
				return c.printer().JSON(registryView{Package: pkg, Registry: u.String()})
			}
			return c.printer().Registry(valueOrDefault(pkg, "(default)"), u)
		},
	}
}

func newCredentialsCmd(c *cli) *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "credentials [package]",
		Short: "Show which credentials apply to a package or registry",
		Long: `Show which credentials apply to a package's registry, or to the URL
given with --url. Tokens and passwords are always redacted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			var u *url.URL
			switch {
			case rawURL != "":
				if u, err = parseRegistryURL(rawURL); err != nil {
					return err
				}
			case len(args) == 1:
				u = cfg.RegistryFor(args[0])
			default:
				u = cfg.DefaultRegistry()
			}

			creds, ok := cfg.CredentialsFor(u)
			if c.asJSON {
				return c.printer().JSON(credentialsView{Registry: u.String(), Credentials: creds})
			}
			return c.printer().Credentials(u, creds, ok)
		},
	}
	cmd.Flags().StringVar(&rawURL, "url", "", "registry or package URL to resolve credentials for")

	return cmd
}

func newScopesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List scoped registries from all layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			scopes := cfg.ScopedRegistries()
			if c.asJSON {
				view := make(map[string]string, len(scopes))
				for scope, u := range scopes {
					view[scope] = u.String()
				}
				return c.printer().JSON(view)
			}
			return c.printer().Scopes(scopes)
		},
	}
}

func newLayersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Show which config files were loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			return c.printer().Layers(cfg)
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.printer().BuildInfo(c.buildInfo)
		},
	}
}

type registryView struct {
	Package  string `json:"package,omitempty"`
	Registry string `json:"registry"`
}

type credentialsView struct {
	Registry    string             `json:"registry"`
	Credentials models.Credentials `json:"credentials"`
}

// parseRegistryURL accepts any absolute URL with a host. Unlike
// registry.ParseURL it keeps the path as given, so a package URL maps to its
// registry directory.
func parseRegistryURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", registry.ErrInvalidURL, raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w %q: absolute URL with a host expected", registry.ErrInvalidURL, raw)
	}
	return u, nil
}

func versionString(info models.AppBuildInfo) string {
	return fmt.Sprintf("%s (built %s from %s)",
		valueOrDefault(info.BuildVersion(), "N/A"),
		valueOrDefault(info.BuildDate(), "N/A"),
		valueOrDefault(info.BuildCommit(), "N/A"))
}

func valueOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
