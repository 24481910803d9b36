//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the testbed animation into the configured output directory.
func (Run) Render() error {
	fmt.Println("Render testbed...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed in real time, reloading config.toml on change.
func (Run) Realtime() error {
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "config.toml", "-realtime", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders scenes/arrows.yaml instead of the built-in demo.
func (Run) Scene() error {
	fmt.Println("Render scenes/arrows.yaml...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "config.toml", "-scene", "scenes/arrows.yaml"), withStream()); err != nil {
		return err
	}
	return nil
}
