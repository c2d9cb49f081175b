// Package main provides the CLI entry point for celloverlay.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"celloverlay/internal/app"
	"celloverlay/pkg/overlay"
	"celloverlay/pkg/overlay/output"
	"celloverlay/pkg/overlay/xlsx"
)

var (
	widgetsPath string
	sheetName   string
	outputPath  string
	pretty      bool
	firstRow    int
	firstCol    int
	rowCount    int
	colCount    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "celloverlay [input.xlsx]",
		Short: "Resolve cell widget placements for a spreadsheet viewport",
		Long: `celloverlay maps widget descriptors anchored to spreadsheet cells onto
pixel rectangles within a visible viewport, honoring merged cells, dynamic
row/column sizing, and scroll position. Output is a JSON placement report.`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}

	rootCmd.PersistentFlags().StringVarP(&widgetsPath, "widgets", "w", "", "Widget manifest JSON file (required)")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "", "Active sheet name (default: first sheet)")
	rootCmd.PersistentFlags().IntVar(&firstRow, "row", 0, "First visible row index (0-based)")
	rootCmd.PersistentFlags().IntVar(&firstCol, "col", 0, "First visible column index (0-based)")
	rootCmd.PersistentFlags().IntVar(&rowCount, "rows", 40, "Number of visible rows")
	rootCmd.PersistentFlags().IntVar(&colCount, "cols", 20, "Number of visible columns")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	viewCmd := &cobra.Command{
		Use:   "view [input.xlsx]",
		Short: "Interactively scroll the viewport and watch placements update",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	rootCmd.AddCommand(viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openInputs(inputPath string) (*xlsx.Workbook, *overlay.Manifest, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", inputPath)
	}
	if widgetsPath == "" {
		return nil, nil, fmt.Errorf("--widgets is required")
	}

	wb, err := xlsx.LoadWorkbook(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	manifest, err := overlay.LoadManifest(widgetsPath)
	if err != nil {
		wb.Close()
		return nil, nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	if sheetName == "" {
		sheets := wb.Sheets()
		if len(sheets) == 0 {
			wb.Close()
			return nil, nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	return wb, manifest, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	wb, manifest, err := openInputs(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	snap, err := wb.Snapshot(sheetName, firstRow, rowCount, firstCol, colCount)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	report := output.Report{
		Sheet: sheetName,
		Viewport: output.Viewport{
			FirstRow: firstRow,
			RowCount: rowCount,
			FirstCol: firstCol,
			ColCount: colCount,
		},
		WidgetCount: len(manifest.Widgets),
		Placements:  overlay.ResolveAll(snap, manifest.Widgets),
	}

	jsonData, err := output.ToJSON(&report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonData))
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	wb, manifest, err := openInputs(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	return app.Run(wb, manifest, sheetName, firstRow, firstCol)
}
