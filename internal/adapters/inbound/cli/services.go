package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/api"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/config"
)

// newBackendClient wires config → REST client. Configuration comes from
// .orderdesk.yaml in the working directory, with ORDERDESK_API_URL
// overriding the base URL.
func newBackendClient() (*api.Client, error) {
	cfg, err := config.New().Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return api.New(cfg), nil
}

// parseID parses a positional integer id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseItemSpec parses a --item flag of the form "productID:qty".
func parseItemSpec(spec string) (productID, qty int, err error) {
	left, right, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid item %q, expected productID:qty", spec)
	}
	productID, err = strconv.Atoi(left)
	if err != nil || productID <= 0 {
		return 0, 0, fmt.Errorf("invalid product id in item %q", spec)
	}
	qty, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity in item %q", spec)
	}
	return productID, qty, nil
}

// confirm asks the operator before a destructive action. A --yes flag
// skips the prompt.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
