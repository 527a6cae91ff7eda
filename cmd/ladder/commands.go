package main

import (
	"fmt"
	"strings"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/spf13/cobra"
)

// exactArgs reports a wrong argument count with ladder.ErrInvalidArgumentCount.
func exactArgs(n int) cobra.PositionalArgs {
	return rangeArgs(n, n)
}

func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			if min == max {
				return fmt.Errorf("%w: %s takes %d arguments, got %d", ladder.ErrInvalidArgumentCount, cmd.Name(), min, len(args))
			}
			return fmt.Errorf("%w: %s takes %d to %d arguments, got %d", ladder.ErrInvalidArgumentCount, cmd.Name(), min, max, len(args))
		}
		return nil
	}
}

// parseModeArg accepts a mode token or "all".
func parseModeArg(s string) (ladder.Mode, bool, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return 0, true, nil
	}
	mode, err := ladder.ParseMode(s)
	return mode, false, err
}

func newLadderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ladder [all|1s|2s|ffa]",
		Aliases: []string{"l"},
		Short:   "Print every player's rating sorted by elo",
		Args:    rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := ladder.Modes
			if len(args) == 1 {
				mode, all, err := parseModeArg(args[0])
				if err != nil {
					return err
				}
				if !all {
					modes = []ladder.Mode{mode}
				}
			}

			out := cmd.OutOrStdout()
			for i, mode := range modes {
				players, err := a.store.List(cmd.Context(), mode)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, titleStyle.Render(mode.String()))
				fmt.Fprintln(out, renderLadder(players))
			}
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [all|1s|2s|ffa] <name>",
		Short: "Add a player to a ladder, or to every ladder. Names must be unique",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[len(args)-1]
			all := true
			var mode ladder.Mode
			if len(args) == 2 {
				var err error
				mode, all, err = parseModeArg(args[0])
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if !all {
				player, err := a.processor.AddPlayer(cmd.Context(), mode, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added %s to %s at %.0f\n", player.Name, mode, player.Rating)
				return nil
			}

			regs, err := a.processor.AddPlayerToAll(cmd.Context(), name)
			for _, reg := range regs {
				if reg.Err != nil {
					fmt.Fprintf(out, "Skipped %s: %v\n", reg.Mode, reg.Err)
					continue
				}
				fmt.Fprintf(out, "Added %s to %s at %.0f\n", reg.Player.Name, reg.Mode, reg.Player.Rating)
			}
			return err
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "match <winner> <loser>",
		Aliases: []string{"m"},
		Short:   "Change and store ratings for a single 1v1 match",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.processor.RecordDuel(cmd.Context(), ladder.Solo, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}
}

func newFreeForAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ffa <winner> <loser> <loser>",
		Short: "Change and store ratings for a three-player free-for-all",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.processor.RecordFreeForAll(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}
}

func newTeamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team <winner> <winner> <loser> <loser>",
		Short: "Change and store ratings for a 2v2 match",
		Args:  exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.processor.RecordTeamMatch(cmd.Context(), args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}
}

func newOddsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "odds [1s|2s|ffa] <player> <opponent>",
		Short: "Print the chance that player beats opponent",
		Args:  rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ladder.Solo
			if len(args) == 3 {
				m, err := ladder.ParseMode(args[0])
				if err != nil {
					return err
				}
				mode = m
				args = args[1:]
			}
			odds, err := a.processor.Odds(cmd.Context(), mode, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s beats %s in %s %.1f%% of the time\n", args[0], args[1], mode, odds*100)
			return nil
		},
	}
}
