package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"knowledgehub.dev/hub-web/internal/config"
	"knowledgehub.dev/hub-web/internal/httpserver"
	"knowledgehub.dev/hub-web/internal/logging"
	"knowledgehub.dev/hub-web/internal/routes"
)

// serveFlags override the environment when set explicitly.
type serveFlags struct {
	addr      string
	dev       bool
	templates string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "web",
		Short:         "Knowledge Hub web server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := newServeCmd()
	root.AddCommand(serve, newRoutesCmd())

	// bare `web` behaves like `web serve`
	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE
	return root
}

func newServeCmd() *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.OutOrStdout(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			srv, err := httpserver.New(httpserver.ConfigFrom(cfg, log))
			if err != nil {
				return fmt.Errorf("build server: %w", err)
			}
			log.Info().Bool("dev", cfg.Dev).Str("env", cfg.Env).Msg("starting web")
			return httpserver.ListenAndServe(cmd.Context(), srv, cfg.ShutdownTimeout, log)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.addr, "addr", "", "HTTP listen address (default from KNOWLEDGEHUB_WEB_ADDR / PORT)")
	fl.BoolVar(&f.dev, "dev", false, "reparse templates on every request")
	fl.StringVar(&f.templates, "templates", "", "templates directory used in dev mode")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "", "log format (json or console)")
	return cmd
}

// loadConfig reads the environment, then applies flags the user set.
func loadConfig(cmd *cobra.Command, f serveFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	fl := cmd.Flags()
	if fl.Changed("addr") {
		cfg.Addr = f.addr
	}
	if fl.Changed("dev") {
		cfg.Dev = f.dev
	}
	if fl.Changed("templates") {
		cfg.TemplatesDir = f.templates
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tPAGE\tINDEXED")
			for _, rt := range routes.All() {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", rt.Path, rt.Page, !rt.NoIndex)
			}
			return tw.Flush()
		},
	}
}
