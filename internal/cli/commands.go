package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/showroom/internal/state"
	"github.com/Makepad-fr/showroom/internal/store/catalog"
	"github.com/Makepad-fr/showroom/internal/ui"
)

func newListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print every car in a framed panel",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cars, err := catalog.Load(opts.Data)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			st := ui.NewStyles(ui.Current())
			board := state.NewBoard(cars)

			lines := []string{
				fmt.Sprintf("%s  %s %d", st.AppTitle.Render("Car Showroom"), st.Muted.Render("cars"), board.Len()),
				"",
			}
			for i := 0; i < board.Len(); i++ {
				r, err := board.Render(i)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%s %s  %s",
					st.Muted.Render(fmt.Sprintf("%2d.", i+1)),
					st.Name.Render(r.Name),
					st.Price.Render(r.Price),
				))
				for _, f := range r.Features {
					lines = append(lines, "    "+st.Feature.Render("• "+f))
				}
			}
			lines = append(lines, "", st.Muted.Render("Tip: `showroom show 2` opens a car's photos"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func newShowCmd(opts *Options) *cobra.Command {
	var image int
	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Print one car expanded on a detail photo",
		Example: `  showroom show 1
  showroom show 3 --image 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("show: not a number: %s", args[0])
			}
			cars, err := catalog.Load(opts.Data)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if n < 1 || n > len(cars) {
				return fmt.Errorf("index out of range: have %d, got %d", len(cars), n)
			}
			row := n - 1
			count := len(cars[row].DetailImages)
			if image < 1 || image > count {
				return fmt.Errorf("image out of range: have %d, got %d", count, image)
			}

			board := state.NewBoard(cars)
			if err := board.Apply(row, state.CmdToggle); err != nil {
				return err
			}
			for i := 1; i < image; i++ {
				if err := board.Apply(row, state.CmdNext); err != nil {
					return err
				}
			}
			r, err := board.Render(row)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderCard(r, ui.NewStyles(ui.Current()), ui.CardOptions{}))
			return nil
		},
	}
	cmd.Flags().IntVar(&image, "image", 1, "detail photo to open (1-based)")
	return cmd
}

func newValidateCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalog file without opening the screen",
		Long: `Loads a catalog and reports every record that would break the screen,
such as a car without detail photos. Without a file argument the --data
catalog (or the built-in one) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.Data
			if len(args) == 1 {
				path = args[0]
			}
			cars, err := catalog.Load(path)
			if err != nil {
				return err
			}
			name := path
			if name == "" {
				name = "built-in catalog"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s: %d cars", name, len(cars)))
			return nil
		},
	}
}
