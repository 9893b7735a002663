package runstore

import (
	"fmt"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
)

// PrintRunStoreStatus prints run-tracking status information.
func PrintRunStoreStatus(status *contract.RunStoreStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalRuns > 0 {
		if status.LastRun != nil {
			fmt.Printf("Last Run: %s\n", status.LastRun.Format("2006-01-02 15:04:05"))
		}
		if status.OldestRun != nil {
			fmt.Printf("Oldest Run: %s\n", status.OldestRun.Format("2006-01-02 15:04:05"))
		}
	}
}
