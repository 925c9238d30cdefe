package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/exploding-dots/internal/controls"
	"github.com/iburimskiy/exploding-dots/internal/dots"
	"github.com/iburimskiy/exploding-dots/internal/textview"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show VALUE",
		Short: "Print the exploded form of VALUE",
		Example: `  explodingdots show 1234 --base 10
  explodingdots show --base 8 --places 2 -- -9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			board, err := a.newBoard()
			if err != nil {
				return err
			}
			if _, err := controls.New(board, true, a.logger).Apply(controls.Request{Action: controls.Load, Value: v}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textview.Render(board))
			return nil
		},
	}
}

func newExplodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explode COUNT...",
		Short: "Explode a row of dot counts, leftmost place first",
		Long: `Builds a board from the given dot counts (negative counts are antidots),
prints it, runs one explode pass and prints the result. The number of
counts sets the number of places.`,
		Example: `  explodingdots explode 0 0 15 --base 10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := parseCounts(args)
			if err != nil {
				return err
			}
			board, err := dots.FromPlaces(places, a.cfg.Base, a.limits())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, textview.Render(board))

			res, err := controls.New(board, true, a.logger).Apply(controls.Request{Action: controls.Explode})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d explosion(s)\n\n", len(res.Explosions))
			fmt.Fprintln(out, textview.Render(board))
			return nil
		},
	}
}

func newUnexplodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "unexplode PLACE VALUE",
		Short:   "Unexplode one dot at PLACE of VALUE's board into the place to its right",
		Example: `  explodingdots unexplode 5 8 --base 8`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			place, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("place %q: %w", args[0], err)
			}
			v, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[1], err)
			}
			board, err := a.newBoard()
			if err != nil {
				return err
			}
			ctrl := controls.New(board, true, a.logger)
			if _, err := ctrl.Apply(controls.Request{Action: controls.Load, Value: v}); err != nil {
				return err
			}
			if _, err := ctrl.Apply(controls.Request{Action: controls.Unexplode, Place: place}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textview.Render(board))
			return nil
		},
	}
}

func parseCounts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("count %q: %w", s, err)
		}
		out[i] = n
	}
	return out, nil
}
