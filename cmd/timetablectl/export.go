package main

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the selected courses as CSV in the catalog layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		defer logger.Sync()

		cat, sel, err := selectionFromFlags(cmd, logger)
		if err != nil {
			return err
		}
		courses, _ := cat.Resolve(sel)

		out, _ := cmd.Flags().GetString("out")
		w := cmd.OutOrStdout()
		if out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := catalog.WriteCSV(w, courses); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("select", "", "Comma separated course keys, e.g. 10001-1,10234-2")
	exportCmd.Flags().String("out", "-", "Output CSV path, - for stdout")
	exportCmd.MarkFlagRequired("select")
}
