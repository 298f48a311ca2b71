// Package cli implements the progressview command-line interface.
//
// # Command Structure
//
//	progressview demo           - Run a simulated job under the dashboard
//	progressview config init    - Write the default .progressview.yaml
//	progressview config show    - Print the effective configuration
//	progressview version        - Print build information
//	progressview completion     - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --log-file, --debug) are defined on the root
// command. The dashboard owns the terminal while it runs, so diagnostics
// only go to the file named by --log-file or the config's log.file.
//
// SIGINT and SIGTERM cancel a running demo; the dashboard is reset before
// the process exits with status 1.
package cli
