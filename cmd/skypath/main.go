// Command skypath plans minimum-cost drone flights over terrain grids.
//
// Usage:
//
//	skypath solve mission.yaml
//	skypath solve --sample
//	skypath batch --jobs 4 missions/*.yaml
//	skypath render mission.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
