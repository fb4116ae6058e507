package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when nest is called without subcommands.
var RootCmd = &cobra.Command{
	Use:   "nest",
	Short: "pack irregular 2D shapes into bins",
	Long: `nest is the command-line front end for the nesting engine:
	- load a job file describing a bin, items (or catalog references),
	  and a packing selector,
	- run the no-fit-polygon placer,
	- optionally render each resulting bin to SVG.`,
}

// Execute runs the command tree; called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
