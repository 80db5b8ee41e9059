package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dxffix/pkg/dxf"
	"github.com/philipparndt/dxffix/pkg/repair"
	"github.com/philipparndt/dxffix/version"
)

var (
	inputFile  string
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "dxfmirror",
	Short: "Fix Onshape's mirrored DXF output",
	Long: `dxfmirror mirrors CIRCLE, ARC and LINE entities back to a positive
extrusion direction. Onshape exports such entities in a mirrored coordinate
system, which makes CAM tools cut the part flipped.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "ifile", "i", "", "DXF file to read")
	rootCmd.Flags().StringVarP(&outputFile, "ofile", "o", "", "DXF file to write")
	rootCmd.MarkFlagRequired("ifile")
	rootCmd.MarkFlagRequired("ofile")
}

func run(cmd *cobra.Command, args []string) error {
	doc, err := dxf.Open(inputFile)
	if err != nil {
		return err
	}
	ents := doc.Entities.Entities

	fixed, skipped := repair.Unmirror(ents, repair.Options{})
	for _, kind := range skipped {
		fmt.Printf("%-6s: type not processed!\n", kind)
	}

	if planes := repair.ZPlanes(ents, 0); len(planes) > 1 {
		fmt.Printf("WARNING: Not all elements in same Z plane! %v\n", planes)
	}

	written, err := dxf.SaveFile(outputFile, ents, "")
	if err != nil {
		return err
	}

	fmt.Printf("Repaired %d mirrored entities, wrote %d entities to %s\n", fixed, written, outputFile)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
