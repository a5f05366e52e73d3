// Package apperrors defines the application's error taxonomy and exit codes.
// It provides typed errors for configuration, validation, multiplication,
// timeout, and server failures, plus helpers for wrapping and classifying
// errors across the CLI and HTTP surfaces.
package apperrors
