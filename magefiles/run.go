//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the demo into frames/.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", ".", "-out", "frames"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders the demo with the testbed config, watching testbed/rigs for camera rigs.
func (Run) Rigs() error {
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "testbed/camrig.toml", "-out", "frames"), withStream()); err != nil {
		return err
	}
	return nil
}
