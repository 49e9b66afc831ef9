package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Solve puzzles interactively",
	Long: `repl reads puzzle strings line by line and solves each one. A line
is taken exactly as typed, because its spaces are open cells.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

const replHelp = `  help   show this help
  watch  show time spent per phase since the last reset
  reset  clear the phase timings
  exit   leave (Ctrl-D works too)
  anything else is read as a puzzle string
`

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "binairo> ",
		HistoryFile:     filepath.Join(os.TempDir(), "binairo_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(`Type a puzzle string, or "help".`)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		// Commands are matched on the trimmed line; a puzzle is passed
		// through untouched.
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "help":
			fmt.Print(replHelp)
		case "watch":
			fmt.Print(Watch.Results())
		case "reset":
			Watch.Reset()
		case "exit", "quit":
			return nil
		default:
			if err := solveAndPrint(line); err != nil {
				fmt.Printf("error: %v\n", err)
			}
		}
	}
	return nil
}
