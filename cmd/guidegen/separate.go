// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmsaquatics/guidegen/internal/separate"
)

var separateCmd = &cobra.Command{
	Use:   "separate",
	Short: "Split the generated record tables into themed fragment files",
	Long: `Separate reads the bulk-generated LaTeX document, extracts its
subsection/subsubsection groups, and routes each one into champs.tex,
dual.tex, or team.tex by sheet name. A decorative title page with a
highlight photo is injected before each group. Sections whose name is
not in the routing table are dropped and reported.

Pass --seed for reproducible photo selection.`,
	RunE: runSeparate,
}

func runSeparate(cmd *cobra.Command, args []string) error {
	paths := pathsFromConfig()

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mapping := separate.DefaultMapping()
	if mappingsPath, _ := cmd.Flags().GetString("mappings"); mappingsPath != "" {
		var err error
		if mapping, err = separate.LoadMapping(mappingsPath); err != nil {
			return err
		}
	}

	refPrefix, _ := cmd.Flags().GetString("image-ref-prefix")
	pool, err := separate.LoadImagePool(paths.ImageDir, refPrefix, rng)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	if !filepath.IsAbs(input) && filepath.Dir(input) == "." {
		input = filepath.Join(paths.OutputDir, input)
	}

	cfg := separate.Config{Paths: paths, InputPath: input}
	_, err = separate.Run(cfg, mapping, pool, os.Stdout)
	return err
}

func init() {
	separateCmd.Flags().String("input", separate.InputFile, "generated document (bare names resolve under the output directory)")
	separateCmd.Flags().String("mappings", "", "YAML file overriding the routing and sex-label tables")
	separateCmd.Flags().String("image-ref-prefix", "../assets/highlights/Highlights", "path prefix for image references emitted into the fragments")
	separateCmd.Flags().Int64("seed", 0, "random seed for photo selection (0 = from the clock)")

	rootCmd.AddCommand(separateCmd)
}
