package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/csheth/templeops/internal/simulation"
)

func newAskCmd(a *app) *cobra.Command {
	var (
		recommendation bool
		paced          bool
		then           []string
	)
	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Run a turn without the interface and print the transcript and canvas",
		Long: `Runs one query through the assistant and prints the conversation and
the canvas it produced. Use --then to send follow-up queries in the same
session, so planner actions accumulate the way they do in the interface.

Example:
  templeops ask "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri"
  templeops ask "Plan a Chandi homa for Sunday" --then "add call the florist to my plan"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := append([]string{strings.Join(args, " ")}, then...)
			session := a.newSession()
			var (
				state simulation.State
				err   error
			)
			if paced {
				state, err = askPaced(cmd, session, queries, recommendation)
			} else {
				state, err = askInstant(session, queries, recommendation)
			}
			if err != nil {
				return err
			}
			return writeState(cmd.OutOrStdout(), state)
		},
	}
	cmd.Flags().BoolVar(&recommendation, "rec", false, "treat the first query as a picked suggestion")
	cmd.Flags().BoolVar(&paced, "paced", false, "play the turn with the configured reveal delays")
	cmd.Flags().StringArrayVar(&then, "then", nil, "follow-up query (repeatable)")
	return cmd
}

func askInstant(session *simulation.Session, queries []string, recommendation bool) (simulation.State, error) {
	var state simulation.State
	for i, q := range queries {
		query, opts := turnOptions(q, recommendation && i == 0)
		turn, err := session.Submit(query, opts)
		if err != nil {
			return simulation.State{}, err
		}
		state = session.Drain(turn)
	}
	return state, nil
}

func askPaced(cmd *cobra.Command, session *simulation.Session, queries []string, recommendation bool) (simulation.State, error) {
	runner := simulation.NewRunner(session)
	defer runner.Close()
	for i, q := range queries {
		query, opts := turnOptions(q, recommendation && i == 0)
		if _, err := runner.Start(cmd.Context(), query, opts); err != nil {
			return simulation.State{}, err
		}
		if err := runner.Wait(cmd.Context()); err != nil {
			return simulation.State{}, err
		}
	}
	return session.Snapshot(), nil
}

func turnOptions(query string, recommendation bool) (string, simulation.Options) {
	if !recommendation {
		return query, simulation.Options{}
	}
	return simulation.RecPrefix + query, simulation.Options{DisplayQuery: query}
}
