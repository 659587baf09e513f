package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/spf13/cobra"
)

// addKeyFlags registers the flags every command derives its key pair from.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "", config.KeyModeBound, "How to obtain p and q: bound (search primes with p*q <= n), factors (use --p and --q) or modulus (factor n exactly)")
	cmd.Flags().Int64P("n", "", 0, "Modulus bound (bound mode, at least 10) or exact modulus (modulus mode)")
	cmd.Flags().Int64P("p", "", 0, "First prime (factors mode)")
	cmd.Flags().Int64P("q", "", 0, "Second prime (factors mode)")
	cmd.Flags().Int64P("e", "", 0, "Public exponent; 0 picks the smallest valid exponent")
}

func readKeySettings(cmd *cobra.Command) (*config.KeySettings, error) {
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return nil, fmt.Errorf("invalid mode flag: %w", err)
	}

	values := make(map[string]int64, 4)
	for _, name := range []string{"n", "p", "q", "e"} {
		v, err := cmd.Flags().GetInt64(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values[name] = v
	}

	return &config.KeySettings{
		Mode: mode,
		N:    values["n"],
		P:    values["p"],
		Q:    values["q"],
		E:    values["e"],
	}, nil
}
