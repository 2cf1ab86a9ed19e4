//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Profiles builds the CLI and runs the event-profile pipeline.
func Profiles() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "profiles")
}

// Separate builds the CLI and runs the section separator.
func Separate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "separate")
}

// Guide runs both pipelines in order.
func Guide() error {
	mg.Deps(Profiles)
	return Separate()
}
