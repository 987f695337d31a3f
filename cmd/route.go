package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dailyhub/internal/nav"
)

var routeFormat string

type routeReport struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Route     string `json:"route"`
	Direction string `json:"direction"`
	Pop       string `json:"pop_direction"`
}

// routeCmd shows how a tab switch between two routes would animate.
var routeCmd = &cobra.Command{
	Use:   "route <from> <to>",
	Short: "Resolve two routes and print the transition direction",
	Long: `Examples:
	dailyhub route notes calendar                 # forward
	dailyhub route "tasks?fromRoute=notes" notes  # backward
	dailyhub route bogus tasks --format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := buildRouteReport(args[0], args[1])
		out := cmd.OutOrStdout()
		switch routeFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		case "", "default":
			fmt.Fprintf(out, "%s -> %s\n", r.From, r.To)
			fmt.Fprintf(out, "route:     %s\n", r.Route)
			fmt.Fprintf(out, "direction: %s\n", r.Direction)
			fmt.Fprintf(out, "pop:       %s\n", r.Pop)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want default|json)", routeFormat)
		}
	},
}

func buildRouteReport(fromRoute, toRoute string) routeReport {
	from, to := nav.Resolve(fromRoute), nav.Resolve(toRoute)
	logger.Debug().Str("from", fromRoute).Str("to", toRoute).Msg("route lookup")
	return routeReport{
		From:      from.Title(),
		To:        to.Title(),
		Route:     nav.Intent{Target: to, From: from}.Route(),
		Direction: nav.TransitionDirection(fromRoute, toRoute).String(),
		Pop:       nav.PopDirection(toRoute, fromRoute).String(),
	}
}

func init() {
	routeCmd.Flags().StringVarP(&routeFormat, "format", "f", "default", "Output: default|json")
}
