// Package commands defines the rubrica CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Open the terminal address book
//   - list     Print contacts in the configured order
//   - add      Add one contact
//   - delete   Delete contacts by ID
//   - import   Append contacts from a CSV, JSON or YAML file
//   - export   Write the address book to a file
//   - seed     Fill an empty address book with sample contacts
//   - reset    Remove every stored contact
//
// # Implementation
//
// The root command loads configuration and builds the registry before any
// subcommand runs. Subcommands drive the same controllers as the TUI through
// a Presenter that prints to the command's output streams.
package commands
