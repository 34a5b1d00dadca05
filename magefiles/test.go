//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests with the race detector.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs the tests of a single package directory, e.g. engine/math.
func (Test) Package(dir string) error {
	_, err := executeCmd("go", withArgs("test", "-v", "."), withDir(dir), withStream())
	return err
}
