package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/printfab/printcost/internal/estimate"
	"github.com/printfab/printcost/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-estimate whenever an STL file changes",
	Long: `Run an estimate and keep watching the given STL files, recomputing
the full breakdown whenever one of them is written. Each recomputation
is a fresh run; there is no incremental state.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWatch,
}

func init() {
	addParameterFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "delay before recomputing after a change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	params, err := buildParameters(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	manual, err := manualItems(cmd, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rerun := func() {
		printResult(estimate.Run(args, manual, params), params)
	}
	rerun()

	debounce, _ := cmd.Flags().GetDuration("debounce")
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(args, func(path string) {
		fmt.Printf("\nChanged: %s\n\n", path)
		rerun()
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fw.Start()
	fmt.Println("\nWatching for changes, press Ctrl+C to stop...")
	select {}
}
