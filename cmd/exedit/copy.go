package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exedit-go/pkg/exedit"
	"github.com/ukaji3/exedit-go/pkg/exedit/editor"
)

var (
	copyFrom   string
	copyOutput string
)

var copyCmd = &cobra.Command{
	Use:   "copy <file> <Sheet1!A1> <Sheet2!B2>",
	Short: "Copy a cell record between sheets",
	Long: `Copy the record at the source address to the target address and save the
workbook. The record travels with its format. With --from, the source cell
is read from a different workbook file. The target sheet is created on
demand.

A missing source cell writes an explicit empty record at the target.`,
	Args: cobra.ExactArgs(3),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copyFrom, "from", "", "Workbook file to read the source cell from (default: <file>)")
	copyCmd.Flags().StringVarP(&copyOutput, "output", "o", "", "Output file path (default: edit in place)")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]
	srcSheet, srcRef := splitSheetRef(args[1])
	dstSheet, dstRef := splitSheetRef(args[2])

	wb, err := exedit.Open(filePath)
	if err != nil {
		return err
	}
	defer wb.Close()

	srcWb := wb
	if copyFrom != "" {
		srcWb, err = exedit.Open(copyFrom)
		if err != nil {
			return err
		}
		defer srcWb.Close()
	}

	src, err := resolveSheet(srcWb, srcSheet)
	if err != nil {
		return err
	}
	dstName := dstSheet
	if dstName == "" {
		dstName = wb.Sheets()[0]
	}
	dst, err := wb.EnsureSheet(dstName)
	if err != nil {
		return err
	}

	if err := editor.CopyCell(src, srcRef, dst, dstRef); err != nil {
		return err
	}

	if copyOutput != "" {
		if err := wb.SaveAs(copyOutput); err != nil {
			return err
		}
	} else if err := wb.Save(); err != nil {
		return err
	}

	if jsonOutput {
		return jsonPrint(map[string]string{"from": args[1], "to": args[2]})
	}
	fmt.Printf("Copied %s to %s.\n", args[1], args[2])
	return nil
}
