package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the active configuration as YAML",
	Long: `Print the configuration the game would run with, resolved from the
--config flag, ~/.snaketerm/config.yaml, ./configs/snake.yaml, or the
built-in defaults, in that order.

Partial files work: fields you leave out keep their defaults.

Examples:
  snake config
  snake config > ~/.snaketerm/config.yaml
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Snake configuration. Save as ~/.snaketerm/config.yaml to customize.")
	fmt.Print(string(data))
}
