package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/dxffix/pkg/contour"
	"github.com/philipparndt/dxffix/pkg/dxf"
	"github.com/philipparndt/dxffix/pkg/repair"
	"github.com/philipparndt/dxffix/pkg/units"
)

var (
	fixOutput   string
	fixSuffix   string
	fixUnits    string
	fixKeepZ    bool
	fixContours bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [files...]",
	Short: "Repair DXF files and write the fixed copies",
	Long: `Run the repair passes over one or more DXF files: un-mirror entities
with a negative extrusion direction, flatten geometry to Z=0 and optionally
convert units. The result is written next to the input unless --output is
given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "output file (single input only)")
	fixCmd.Flags().StringVar(&fixSuffix, "suffix", "", "suffix for derived output names (default from config)")
	fixCmd.Flags().StringVar(&fixUnits, "units", "", "convert to these units (mm, cm or in)")
	fixCmd.Flags().BoolVar(&fixKeepZ, "keep-z", false, "do not flatten geometry to Z=0")
	fixCmd.Flags().BoolVar(&fixContours, "contours", false, "also warn about open contours")
}

func runFix(cmd *cobra.Command, args []string) error {
	if fixOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be combined with multiple input files")
	}
	if fixUnits != "" && !units.Valid(fixUnits) {
		return fmt.Errorf("unknown unit %q", fixUnits)
	}

	g, _ := errgroup.WithContext(cmd.Context())
	for _, path := range args {
		path := path
		g.Go(func() error {
			return fixFile(path)
		})
	}
	return g.Wait()
}

// fixFile runs the full repair pipeline on a single file.
func fixFile(path string) error {
	doc, err := dxf.Open(path)
	if err != nil {
		return err
	}
	ents := doc.Entities.Entities
	opts := repair.Options{Tolerance: cfg.Tolerance, Logger: logger}

	var out strings.Builder
	fmt.Fprintf(&out, "%s:\n", path)

	fixed, skipped := repair.Unmirror(ents, opts)
	fmt.Fprintf(&out, "  Mirrored entities repaired: %d\n", fixed)
	for _, kind := range skipped {
		fmt.Fprintf(&out, "  %s: type not processed!\n", kind)
	}

	if planes := repair.ZPlanes(ents, cfg.Tolerance); len(planes) > 1 {
		fmt.Fprintf(&out, "  WARNING: Not all elements in same Z plane! %v\n", planes)
	}
	if !fixKeepZ {
		if moved := repair.Flatten(ents, opts); moved > 0 {
			fmt.Fprintf(&out, "  Entities moved to Z=0: %d\n", moved)
		}
	}

	targetUnits := cfg.Units
	if fixUnits != "" {
		factor, err := units.Factor(cfg.Units, fixUnits)
		if err != nil {
			return err
		}
		if scaled := repair.Scale(ents, factor, opts); scaled > 0 {
			fmt.Fprintf(&out, "  Entities scaled %s -> %s: %d\n", cfg.Units, fixUnits, scaled)
		}
		targetUnits = fixUnits
	}

	if fixContours {
		if open := contour.OpenEndpoints(ents, cfg.Tolerance); len(open) > 0 {
			fmt.Fprintf(&out, "  WARNING: %d open contour endpoint(s)\n", len(open))
		}
	}

	outPath := outputName(path)
	written, err := dxf.SaveFile(outPath, ents, targetUnits)
	if err != nil {
		return err
	}
	if written < len(ents) {
		fmt.Fprintf(&out, "  WARNING: %d unsupported entities were not written\n", len(ents)-written)
	}
	fmt.Fprintf(&out, "  Wrote %d entities to %s\n", written, outPath)

	fmt.Print(out.String())
	return nil
}

// outputName derives the output file name from the flags: an explicit
// --output wins, otherwise the configured suffix is inserted before the
// extension.
func outputName(path string) string {
	if fixOutput != "" {
		return fixOutput
	}
	suffix := fixSuffix
	if suffix == "" {
		suffix = cfg.Suffix
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ".dxf"
}
