package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeKo-Christian/nest2d/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a job file prefilled with default values",
	Long: `Write a job file in YAML format, prefilled with a small default
rectangle bin and a handful of square items.

If FILE is not provided, 'job.yml' is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "job.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if exists(path) && !confirm(fmt.Sprintf("%s already exists, overwrite? [y/N]", path)) {
			fmt.Println("aborted")
			return nil
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Printf("wrote default job to %s\n", path)
		return nil
	},
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func confirm(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	if len(input) == 0 {
		return false
	}
	switch input[0] {
	case 'y', 'Y':
		return true
	default:
		return false
	}
}

func init() {
	RootCmd.AddCommand(configCmd)
}
