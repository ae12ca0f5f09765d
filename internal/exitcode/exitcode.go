// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Every normal path,
	// including a session full of rejected commands, exits with this.
	Success = 0

	// UserError indicates invocation errors (bad flags, bad config).
	UserError = 1
)
