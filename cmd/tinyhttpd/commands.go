package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tinyhttpd/internal/config"
	"github.com/muurk/tinyhttpd/internal/discovery"
	"github.com/muurk/tinyhttpd/internal/logging"
	"github.com/muurk/tinyhttpd/internal/server"
	"github.com/muurk/tinyhttpd/internal/ui"
	"github.com/muurk/tinyhttpd/internal/version"
)

// serveOptions holds the serve command's flag values
type serveOptions struct {
	configPath string
	host       string
	port       int
	docRoot    string
	cgiRoot    string
	framing    string
	logLevel   string
	advertise  bool
	instance   string
}

var serveOpts serveOptions

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start serving static files and CGI scripts.

Settings are read from the configuration file (see 'tinyhttpd init-config')
and can be overridden with flags. Without a configuration file the server
listens on 127.0.0.1:8080 and serves ./www and ./cgi-bin.

CGI output is relayed verbatim by default (--cgi-framing raw); the script is
expected to write its own status line and headers. Use --cgi-framing wrap to
have the server add a "200 OK" status line and headers around it.`,
	Example: `  # Serve ./www and ./cgi-bin on 127.0.0.1:8080
  tinyhttpd serve

  # Custom roots and port, with debug logging
  tinyhttpd serve --www /srv/site --cgi-bin /srv/scripts --port 9000 --log-level debug

  # Wrap CGI output in a proper HTTP response and advertise over mDNS
  tinyhttpd serve --host 0.0.0.0 --cgi-framing wrap --advertise`,
	RunE: runServe,
}

func init() {
	bindServeFlags(serveCmd, &serveOpts)
}

func bindServeFlags(cmd *cobra.Command, opts *serveOptions) {
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to configuration file (default: platform config dir)")
	cmd.Flags().StringVar(&opts.host, "host", config.DefaultHost, "Address to listen on")
	cmd.Flags().IntVar(&opts.port, "port", config.DefaultPort, "Port to listen on")
	cmd.Flags().StringVar(&opts.docRoot, "www", config.DefaultDocumentRoot, "Document root directory")
	cmd.Flags().StringVar(&opts.cgiRoot, "cgi-bin", config.DefaultCGIRoot, "CGI root directory")
	cmd.Flags().StringVar(&opts.framing, "cgi-framing", config.DefaultCGIFraming, "CGI output framing (raw, wrap)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent if unset")
	cmd.Flags().BoolVar(&opts.advertise, "advertise", false, "Advertise the server over mDNS")
	cmd.Flags().StringVar(&opts.instance, "instance", config.DefaultInstance, "mDNS instance name")
}

// buildConfig loads the configuration file and applies flags the user set
// explicitly on top of it
func buildConfig(cmd *cobra.Command, opts serveOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("www") {
		cfg.DocumentRoot = opts.docRoot
	}
	if flags.Changed("cgi-bin") {
		cfg.CGIRoot = opts.cgiRoot
	}
	if flags.Changed("cgi-framing") {
		cfg.CGIFraming = opts.framing
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("advertise") {
		cfg.Advertise.Enabled = opts.advertise
	}
	if flags.Changed("instance") {
		cfg.Advertise.Instance = opts.instance
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, serveOpts)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer logging.Sync()

	// A missing root only turns requests into 404s, so it is not fatal
	for _, dir := range []string{cfg.DocumentRoot, cfg.CGIRoot} {
		info, err := os.Stat(dir)
		if err != nil {
			logging.Warn("Root directory is not accessible", zap.String("dir", dir), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
	}

	if err := srv.Listen(); err != nil {
		return err
	}

	addr := srv.Addr().String()
	boundPort := cfg.Port
	if tcpAddr, ok := srv.Addr().(*net.TCPAddr); ok {
		boundPort = tcpAddr.Port
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewBanner(version.Name, "http://"+addr,
		ui.Param{Key: "Document root", Value: cfg.DocumentRoot},
		ui.Param{Key: "CGI root", Value: cfg.CGIRoot},
		ui.Param{Key: "CGI framing", Value: cfg.CGIFraming},
		ui.Param{Key: "Version", Value: version.Full()},
	).String())

	if cfg.AdvertiseEnabled() {
		adv, err := discovery.Advertise(discovery.Registration{
			Instance: cfg.Advertise.Instance,
			Host:     cfg.Host,
			Port:     boundPort,
			Version:  version.Version,
		}, logging.Named("mdns"))
		if err != nil {
			// The server is still usable without advertisement
			logging.Error("mDNS advertisement failed", zap.Error(err))
		} else {
			defer adv.Shutdown()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

var initConfigOutput string
var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a configuration file with the default settings",
	Long: `Write a configuration file containing the default settings.

Without --output the file is written to the platform configuration
directory, where 'tinyhttpd serve' looks for it by default.`,
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().StringVarP(&initConfigOutput, "output", "o", "", "Destination path (default: platform config dir)")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing file")
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := initConfigOutput
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil && !initConfigForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
