// main is the entry point for the gearpath CLI.
package main

import (
	"github.com/huangsam/gearpath/cmd"
	"github.com/huangsam/gearpath/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
