package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/bismuthsalamander/binairo/takuzu"
)

// PrintUpdates renders solver progress as a one-line bar that redraws
// in place, showing how deep into the grid the current branch reaches.
// It runs until the channel is closed; the caller waits on wg before
// printing anything else.
func PrintUpdates(ch <-chan takuzu.Progress, wg *sync.WaitGroup) {
	defer wg.Done()
	fmt.Println("Searching...")
	for {
		select {
		case update, ok := <-ch:
			if !ok {
				return
			}
			bar := ""
			pct := float64(update.Filled) / float64(update.Cells)
			for i := 0.05; i <= 1.0; i += 0.05 {
				if pct >= i {
					bar += "="
				} else {
					bar += "."
				}
			}
			fmt.Print("\033[1A\033[K")
			fmt.Printf("[%s] %d/%d cells, %d states\n", bar, update.Filled, update.Cells, update.Visits)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
