// Package errors provides exit-code carrying errors and hints for the CLI.
//
// Commands return an *ExitError when the process should end with a specific
// status; main maps any error to its code with GetExitCode:
//
//	os.Exit(errors.GetExitCode(err))
//
// Exit Codes:
//   - ExitSuccess (0): The command completed
//   - ExitPartialFailure (1): A session finished but some events were rejected
//   - ExitFailure (2): The listing could not be loaded or a pass was aborted
//   - ExitConfigError (3): The configuration file is invalid
//
// EnhanceErrorWithHint appends a one-line suggestion for common mistakes.
package errors
