// Tinyhttpd is a minimal HTTP/1.1 server for static files and CGI scripts.
//
// It serves files from a document root and runs executables from a CGI root
// for request paths under /cgi-bin/. Each connection carries a single GET
// request; the connection is closed after the response.
//
// Usage:
//
//	tinyhttpd serve [flags]
//	tinyhttpd init-config [flags]
//	tinyhttpd version
//
// See 'tinyhttpd serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/tinyhttpd/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinyhttpd",
	Short: "Minimal static file and CGI server",
	Long: `A minimal HTTP/1.1 server that serves static files from a sandboxed
document root and runs scripts from a sandboxed CGI root.

Every request path is confined to its root: static paths that escape the
document root get 403 Forbidden, CGI paths that escape the CGI root get
404 Script Not Found.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit: %s)\n", version.Name, version.Version, version.Commit)
	},
}
