// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goeda/gogds"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gds2txt <input.gds> <output.txt>",
		Short: "Render a GDSII stream library as a human-readable text dump",
		Long:  "gds2txt reads a GDSII Stream Format library and writes a hierarchical, indented text rendering of its structures and elements.",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gds2txt:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	lib, err := gds.ReadFile(inputPath, nil)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := gds.Dump(out, lib); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
