package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exedit-go/pkg/exedit"
	"github.com/ukaji3/exedit-go/pkg/exedit/editor"
	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"google.golang.org/genproto/googleapis/type/date"
)

var (
	setNoFormat bool
	setDates    bool
	setOutput   string
)

var setCmd = &cobra.Command{
	Use:   "set <file> <address=value ...>",
	Short: "Set cell values in a workbook",
	Long: `Set cell values and save the workbook.

Each edit is given as address=value with an optional sheet prefix
(Sheet1!A1=42). Sheets named by edits are created on demand; edits without
a sheet prefix target the first sheet. Values are coerced in order: number,
boolean, then string; "null" or an empty value clears the cell. Whole
numbers receive the "0" display format and fractional numbers "0.0000"
unless --no-format is given.

Examples:
  exedit set report.xlsx "Sheet1!A1=42"
  exedit set report.xlsx "Sheet1!A2=5.25" "Sheet1!B1=hello"
  exedit set report.xlsx "Sheet1!C3=true" --no-format
  exedit set report.xlsx "Sheet1!D4=null"
  exedit set report.xlsx "A1=1980-01-31" --dates
  exedit set report.xlsx "A1=7" -o edited.xlsx`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVar(&setNoFormat, "no-format", false, "Do not apply display formats to numeric values")
	setCmd.Flags().BoolVar(&setDates, "dates", false, "Write values of the form yyyy-mm-dd as date cells")
	setCmd.Flags().StringVarP(&setOutput, "output", "o", "", "Output file path (default: edit in place)")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	edits := make([]exedit.Edit, 0, len(args)-1)
	for _, arg := range args[1:] {
		edit, err := parseEdit(arg, setDates)
		if err != nil {
			return err
		}
		edits = append(edits, edit)
	}

	applyFormat := !setNoFormat
	opts := exedit.Options{Format: &applyFormat, Output: setOutput}
	if err := exedit.Apply(filePath, edits, opts); err != nil {
		return err
	}

	if jsonOutput {
		return jsonPrint(map[string]int{"cells_written": len(edits)})
	}
	fmt.Printf("Edit applied: %d cells written.\n", len(edits))
	return nil
}

// parseEdit parses an "address=value" argument into an edit. The value is
// coerced number, boolean, then string; with parseDates set, values of the
// form yyyy-mm-dd become date cells before the string fallback.
func parseEdit(arg string, parseDates bool) (exedit.Edit, error) {
	// Split on the first '=' after '!' so sheet names containing '=' keep
	// working.
	start := strings.IndexByte(arg, '!')
	if start < 0 {
		start = 0
	}
	idx := strings.IndexByte(arg[start:], '=')
	if idx < 0 {
		return exedit.Edit{}, fmt.Errorf("invalid edit %q: expected address=value", arg)
	}
	idx += start
	address := arg[:idx]
	remainder := arg[idx+1:]

	if address == "" {
		return exedit.Edit{}, fmt.Errorf("invalid edit %q: empty address", arg)
	}
	sheetName, cellRef := splitSheetRef(address)
	edit := exedit.Edit{Sheet: sheetName, Address: cellRef}

	// Empty or null clears the cell
	if remainder == "" || strings.EqualFold(remainder, "null") {
		edit.Value = models.EmptyValue()
		return edit, nil
	}

	// Try number
	if f, err := strconv.ParseFloat(remainder, 64); err == nil {
		edit.Value = models.NumberValue(f)
		return edit, nil
	}

	// Try boolean
	lower := strings.ToLower(remainder)
	if lower == "true" || lower == "false" {
		edit.Value = models.BoolValue(lower == "true")
		return edit, nil
	}

	// Try date (only when enabled)
	if parseDates {
		if t, err := time.Parse("2006-01-02", remainder); err == nil {
			d := &date.Date{Year: int32(t.Year()), Month: int32(t.Month()), Day: int32(t.Day())}
			cell := models.NumberCell(editor.SerialDate(d))
			cell.Format = editor.DefaultDateFormat
			edit.Value = models.RawValue(cell)
			return edit, nil
		}
	}

	// String
	edit.Value = models.TextValue(remainder)
	return edit, nil
}
