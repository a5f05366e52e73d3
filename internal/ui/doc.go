// Package ui provides terminal color themes and accessors shared by the CLI
// and TUI presentation layers. It honors the NO_COLOR convention
// (https://no-color.org/) and the --no-color flag.
package ui
