package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "timetablectl",
	Short:         "Course catalog and timetable tools",
	Long:          "timetablectl imports the semester course catalog, checks it, and renders or exports timetables offline.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Catalog file (.csv or .xlsx)")
	rootCmd.PersistentFlags().String("major-sheet", catalog.DefaultMajorSheet, "Workbook sheet with major courses")
	rootCmd.PersistentFlags().String("general-sheet", catalog.DefaultGeneralSheet, "Workbook sheet with general education courses")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger returns a console logger; warnings only unless --verbose.
func newLogger(cmd *cobra.Command) *zap.Logger {
	level := "warn"
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = "debug"
	}
	return app.NewLogger("development", level)
}

// fileSource builds the catalog source from --file and the sheet flags.
func fileSource(cmd *cobra.Command) (catalog.Source, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	major, _ := cmd.Flags().GetString("major-sheet")
	general, _ := cmd.Flags().GetString("general-sheet")
	return catalog.FileSource(path, major, general)
}

func loadCatalog(ctx context.Context, cmd *cobra.Command, logger *zap.Logger) (*timetable.Catalog, error) {
	src, err := fileSource(cmd)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, src, logger)
}

// buildSelection adds the comma separated keys in order, the way a user
// would, and reports each rejected key.
func buildSelection(cat *timetable.Catalog, list string) (timetable.Selection, []error) {
	sel := timetable.Reset()
	var rejected []error
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, err := timetable.ParseCourseKey(part)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		next, err := timetable.TryAdd(sel, cat, key)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		sel = next
	}
	return sel, rejected
}

// selectionFromFlags loads the catalog and the --select keys.
func selectionFromFlags(cmd *cobra.Command, logger *zap.Logger) (*timetable.Catalog, timetable.Selection, error) {
	cat, err := loadCatalog(cmd.Context(), cmd, logger)
	if err != nil {
		return nil, nil, err
	}

	list, _ := cmd.Flags().GetString("select")
	sel, rejected := buildSelection(cat, list)
	for _, err := range rejected {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", err)
	}
	if len(sel) == 0 {
		return nil, nil, fmt.Errorf("no course could be selected from %q", list)
	}
	return cat, sel, nil
}
