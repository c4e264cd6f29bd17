// Package main provides the CLI entry point for exedit-go.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exedit-go/pkg/exedit"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "exedit",
	Short: "Edit cell values, ranges, and merges in Excel workbooks",
	Long: `exedit-go edits cells in Excel (.xlsx) workbooks: set typed values,
read cells and numeric ranges, copy cell records across sheets and files,
and register merge regions.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of plain text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// splitSheetRef splits "Sheet1!A1" into sheet and cell parts, removing
// quotes around the sheet name. Refs without a sheet prefix return "" and
// the ref unchanged.
func splitSheetRef(ref string) (sheetName, cellRef string) {
	name, rest, ok := strings.Cut(ref, "!")
	if !ok {
		return "", ref
	}
	return strings.Trim(name, "'"), rest
}

// resolveSheet resolves a sheet by name, defaulting to the workbook's first
// sheet when name is empty.
func resolveSheet(wb *exedit.Workbook, name string) (*sheet.FileSheet, error) {
	if name == "" {
		name = wb.Sheets()[0]
	}
	return wb.Sheet(name)
}
