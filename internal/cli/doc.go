// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the countdown flags into the application's internal
// configuration; argument mistakes surface as ExitError with code 2.
package cli
