package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dxffix/pkg/analysis"
	"github.com/philipparndt/dxffix/pkg/contour"
	"github.com/philipparndt/dxffix/pkg/dxf"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a DXF file",
	Long:  "Show entity counts, drawing extents, Z planes and the defects the repair passes would address.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := dxf.Open(path)
	if err != nil {
		return err
	}
	ents := doc.Entities.Entities

	report := analysis.Analyze(ents, cfg.Tolerance)
	open := contour.OpenEndpoints(ents, cfg.Tolerance)

	fmt.Println("DXF File Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", path)

	fmt.Println("Entities:")
	kinds := make([]string, 0, len(report.Counts))
	for kind := range report.Counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %-10s %d\n", kind, report.Counts[kind])
	}
	fmt.Printf("  Total: %d\n\n", report.EntityCount)

	if !report.Bounds.Empty() {
		size := report.Bounds.Size()
		fmt.Println("Extents:")
		fmt.Printf("  Min: (%.4f, %.4f, %.4f)\n", report.Bounds.Min.X, report.Bounds.Min.Y, report.Bounds.Min.Z)
		fmt.Printf("  Max: (%.4f, %.4f, %.4f)\n", report.Bounds.Max.X, report.Bounds.Max.Y, report.Bounds.Max.Z)
		fmt.Printf("  Size: %.4f x %.4f\n\n", size.X, size.Y)
	}

	fmt.Println("Health:")
	fmt.Printf("  Mirrored entities: %d\n", report.Mirrored)
	fmt.Printf("  Z planes: %s\n", report.FormatPlanes())
	fmt.Printf("  Entities off Z=0: %d\n", report.OffPlane)
	fmt.Printf("  Open contour endpoints: %d\n", len(open))

	return nil
}
