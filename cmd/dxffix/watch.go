package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dxffix/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and fix newly exported DXF files",
	Long: `Monitor a directory for new or changed DXF files and run the repair
pipeline on each of them. Output files carry the configured suffix and are
not reprocessed. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&fixSuffix, "suffix", "", "suffix for derived output names (default from config)")
	watchCmd.Flags().StringVar(&fixUnits, "units", "", "convert to these units (mm, cm or in)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	debounce, err := cfg.DebounceInterval()
	if err != nil {
		return err
	}

	suffix := fixSuffix
	if suffix == "" {
		suffix = cfg.Suffix
	}

	dw, err := watcher.New(debounce, suffix, func(path string) {
		if err := fixFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error fixing %s: %v\n", path, err)
		}
	})
	if err != nil {
		return err
	}
	defer dw.Close()

	if err := dw.Watch(dir); err != nil {
		return err
	}
	dw.Start()
	fmt.Printf("Watching %s for DXF files (Ctrl-C to stop)\n", dir)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	fmt.Println("\nStopping")
	return nil
}
