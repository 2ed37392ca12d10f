// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, number out of range, blank title).
	UserError = 1

	// StorageError indicates the persisted task data could not be written.
	StorageError = 2
)
