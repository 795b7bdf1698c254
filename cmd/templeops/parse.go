package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/csheth/templeops/internal/entity"
	"github.com/csheth/templeops/internal/intent"
	"github.com/csheth/templeops/internal/parser"
)

// parseOutput is the router result plus every entity found in the query.
type parseOutput struct {
	parser.Result
	Entities entity.Entities `json:"entities"`
}

var referenceLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func newParseCmd(a *app) *cobra.Command {
	var now string
	cmd := &cobra.Command{
		Use:   "parse <query>",
		Short: "Print the router result for a query as JSON",
		Long: `Detects the intent of a query and, for VIP visits, extracts the visitor,
date, time, location and protocol level. The entities found in the query are
listed separately. Relative dates resolve against --now.

Intents, highest priority first: ` + kindList() + `

Example:
  templeops parse "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri" --now 2024-03-10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseReference(now)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			out := parseOutput{
				Result:   parser.ParseQuery(query, ref),
				Entities: entity.ExtractAll(query, ref),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "reference time, RFC3339 or YYYY-MM-DD[THH:MM] (default: current time)")
	return cmd
}

func parseReference(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range referenceLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want RFC3339 or YYYY-MM-DD", value)
}

func kindList() string {
	kinds := intent.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
