package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/exedit-go/pkg/exedit"
	"github.com/ukaji3/exedit-go/pkg/exedit/editor"
)

var rangeCmd = &cobra.Command{
	Use:   "range <file> <Sheet1!A1:B2>",
	Short: "Read a numeric range as a 2D JSON array",
	Long: `Read every cell in a rectangular range and print the numeric values as a
row-major 2D JSON array. Absent and non-numeric cells appear as null, so
the output always has the range's dimensions. A single cell reference reads
as a 1x1 range.`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	sheetName, rangeRef := splitSheetRef(args[1])

	wb, err := exedit.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	ws, err := resolveSheet(wb, sheetName)
	if err != nil {
		return err
	}

	values, err := editor.ReadNumberRange(ws, rangeRef)
	if err != nil {
		return err
	}
	return jsonPrint(values)
}
