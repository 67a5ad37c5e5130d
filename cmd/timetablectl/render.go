package main

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Short:   "Render a timetable PNG for a list of course keys",
	Example: "  timetablectl render --file timetable.xlsx --select 10001-1,10234-2 --out week.png",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		defer logger.Sync()

		cat, sel, err := selectionFromFlags(cmd, logger)
		if err != nil {
			return err
		}

		fontPath, _ := cmd.Flags().GetString("font")
		if fontPath == "" {
			fontPath = os.Getenv("FONT_PATH")
		}
		renderer, err := common.NewTimetableRenderer(fontPath)
		if err != nil {
			return err
		}

		grid := timetable.BuildGrid(cat, sel)
		data, err := renderer.Render(grid)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}

		w := cmd.OutOrStdout()
		if table := formatting.FormatGrid(grid); table != "" {
			fmt.Fprintln(w, table)
		}
		fmt.Fprintf(w, "%d courses, %s credits -> %s\n",
			len(grid.Courses), formatting.FormatCredits(timetable.TotalCredits(cat, sel)), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("select", "", "Comma separated course keys, e.g. 10001-1,10234-2")
	renderCmd.Flags().String("out", "timetable.png", "Output PNG path")
	renderCmd.Flags().String("font", "", "TTF/OTF font with Hangul glyphs (defaults to FONT_PATH)")
	renderCmd.MarkFlagRequired("select")
}
