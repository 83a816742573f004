// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the countdown lifecycle from target
// resolution through the interactive phase to the completion command,
// decoupled from the CLI entrypoint.
package app
