package main

import (
	"log"

	"github.com/radio47ke/companion/cmd/companion/run"
	"github.com/radio47ke/companion/cmd/companion/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "companion",
		Short: "radio 47 companion core",
	}

	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
