package main

import (
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a catalog file and print statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := fileSource(cmd)
		if err != nil {
			return err
		}
		raw, err := src.Load(cmd.Context())
		if err != nil {
			return err
		}
		rows, dropped, err := catalog.Normalize(raw)
		if err != nil {
			return err
		}
		cat := timetable.BuildCatalog(rows)

		untimed := 0
		for _, c := range cat.Courses() {
			if c.Untimed() {
				untimed++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows:        %d\n", len(raw))
		fmt.Fprintf(out, "dropped:     %d\n", dropped)
		fmt.Fprintf(out, "courses:     %d\n", cat.Len())
		fmt.Fprintf(out, "untimed:     %d\n", untimed)
		fmt.Fprintf(out, "departments: %d\n", len(cat.Departments()))
		for _, k := range cat.Duplicates() {
			fmt.Fprintf(out, "duplicate:   %s\n", k)
		}
		return nil
	},
}
