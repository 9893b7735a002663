// main is the entry point for the f1quali CLI.
package main

import (
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/cmd"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
