package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dxffix/pkg/analysis"
	"github.com/philipparndt/dxffix/pkg/contour"
	"github.com/philipparndt/dxffix/pkg/dxf"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate DXF files without modifying them",
	Long: `Run the validation passes over one or more DXF files and report
defects: mirrored entities, geometry off the Z=0 plane, non-coplanar
geometry and open contours. Exits non-zero when any defect is found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	defects := 0
	for _, path := range args {
		doc, err := dxf.Open(path)
		if err != nil {
			return err
		}
		ents := doc.Entities.Entities

		report := analysis.Analyze(ents, cfg.Tolerance)
		open := contour.OpenEndpoints(ents, cfg.Tolerance)

		fmt.Printf("%s: %d entities\n", path, report.EntityCount)
		if report.Mirrored > 0 {
			fmt.Printf("  DEFECT: %d entities have a negative extrusion direction\n", report.Mirrored)
		}
		if !report.Coplanar() {
			fmt.Printf("  DEFECT: Not all elements in same Z plane! %s\n", report.FormatPlanes())
		}
		if !report.AtZero() {
			fmt.Printf("  DEFECT: %d entities are not at Z=0\n", report.OffPlane)
		}
		for _, p := range open {
			fmt.Printf("  DEFECT: open contour endpoint at (%.4f, %.4f)\n", p.X, p.Y)
		}
		if report.Defects() == 0 && len(open) == 0 {
			fmt.Println("  OK")
		}

		defects += report.Defects() + len(open)
	}

	if defects > 0 {
		return fmt.Errorf("%d defect(s) found", defects)
	}
	return nil
}
