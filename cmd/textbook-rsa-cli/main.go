// Package main is the entry point for the textbook-rsa-cli application.
// It registers the key derivation, encryption, decryption, signing and
// verification commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `textbook-rsa-cli derives small RSA key pairs and applies unpadded RSA
to a message one character at a time. It also signs and verifies messages
with a deliberately weak additive digest.

Keys are never stored: every command re-derives them from --mode and the
matching --n, --p, --q and --e flags.

This is a teaching tool. Textbook RSA is deterministic and leaks patterns;
do not use it to protect real data.

Logging is configured through the environment:
- LOG_LEVEL (debug, info, warning, error, critical; default info)
- LOG_TYPE (console or file; default console)
- LOG_FILE_PATH (required when LOG_TYPE=file)`,
	}

	if err := commands.InitTextbookRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
