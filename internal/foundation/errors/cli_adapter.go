package errors

import (
	"fmt"
	"log/slog"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit codes for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor determines the process exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	ce, ok := AsClassified(err)
	if !ok {
		return 1
	}
	switch ce.Category() {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryConfig:
		return 7
	case CategoryGit:
		return 8
	case CategoryFileSystem, CategoryRender:
		return 11
	case CategoryRuntime:
		return 12
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for terminal display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	ce, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if ce.Category() == CategoryInternal && !a.verbose {
		return "Internal error occurred (use -v for details)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", ce.Message())
	if a.verbose && ce.Cause() != nil {
		fmt.Fprintf(&b, ": %v", ce.Cause())
	}
	if ce.Hint() != "" {
		fmt.Fprintf(&b, "\nHint: %s", ce.Hint())
	}
	return b.String()
}

// HandleError logs the error and returns the exit code to use.
func (a *CLIErrorAdapter) HandleError(err error) int {
	if err == nil {
		return 0
	}
	code := a.ExitCodeFor(err)
	attrs := []any{"exit_code", code}
	if ce, ok := AsClassified(err); ok {
		attrs = append(attrs, "category", string(ce.Category()))
		for k, v := range ce.Context() {
			attrs = append(attrs, k, v)
		}
	}
	a.logger.Error(a.FormatError(err), attrs...)
	return code
}
