package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/barfmt/cmd/barfmt"
	"github.com/arthur-debert/barfmt/internal/version"
)

func main() {
	rootCmd := barfmt.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BARFMT",
		Section: "1",
		Source:  "barfmt " + version.Version,
		Manual:  "barfmt manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
