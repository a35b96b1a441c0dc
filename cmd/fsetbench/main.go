/*
fsetbench exercises the persistent set variants of this module and reports
their shape statistics, to compare placement quality between the plain and
the power-of-choices structures.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "fsetbench"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: appName + " - shape diagnostics for the persistent set variants",
	}
	rootCmd.AddCommand(defineBenchCommand())
	rootCmd.AddCommand(definePrimesCommand())
	return rootCmd.Execute()
}
