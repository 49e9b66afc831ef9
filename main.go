package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bismuthsalamander/binairo/takuzu"
)

var log = logrus.New()

var (
	flagFile       string
	flagVerbose    bool
	flagProgress   bool
	flagProfile    string
	flagProfileDir string
)

var rootCmd = &cobra.Command{
	Use:   "binairo [puzzle]",
	Short: "Solve Takuzu (Binairo) puzzles",
	Long: `binairo solves Takuzu puzzles, also known as Binairo: fill a grid
with zeros and ones so that every row and column holds an equal number
of each, no three adjacent cells match, and no two rows or columns
repeat.

A puzzle is one character per cell in row-major order: '0' or '1' for a
given cell, a space for an open one. Supported sizes are 4x4, 6x6 and
8x8, so the string must be 16, 36 or 64 characters long.`,
	Example: `  binairo "0  1      000  0"
  binairo --file puzzle.txt
  binairo repl`,
	Args:          puzzleArgs,
	RunE:          runSolve,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug detail to stderr")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "read the puzzle string from a file")
	rootCmd.Flags().BoolVar(&flagProgress, "progress", false, "show a progress bar while searching")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "write a profile: cpu, mem or clock")
	rootCmd.Flags().StringVar(&flagProfileDir, "profile-dir", "", "directory for profile output (default a temp dir)")
	rootCmd.AddCommand(replCmd)
}

// puzzleArgs wants exactly one puzzle string on the command line, or
// none when --file supplies it.
func puzzleArgs(cmd *cobra.Command, args []string) error {
	if flagFile != "" {
		if len(args) != 0 {
			return errors.New("pass a puzzle string or --file, not both")
		}
		return nil
	}
	if len(args) != 1 {
		return errors.New("expected exactly one puzzle string")
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if flagProfile != "" {
		stop, err := startProfile(flagProfile, flagProfileDir)
		if err != nil {
			return err
		}
		defer stop()
	}
	input := ""
	if flagFile != "" {
		s, err := readPuzzleFile(flagFile)
		if err != nil {
			return err
		}
		input = s
	} else {
		input = args[0]
	}
	err := solveAndPrint(input)
	log.Debugf("phase timings:\n%s", Watch.Results())
	return err
}

// solveAndPrint runs the whole pipeline for one puzzle string: parse,
// echo the grid, check it, search, report. Malformed input and grids
// that already break a rule come back as errors; a puzzle with no
// solution is a normal outcome, not an error.
func solveAndPrint(input string) error {
	Watch.Start("parse")
	p, err := takuzu.Parse(input)
	Watch.Stop("parse")
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"size": p.Size, "filled": p.Filled()}).Debug("parsed puzzle")
	fmt.Print(p)

	Watch.Start("check")
	ok := p.Valid()
	Watch.Stop("check")
	if !ok {
		return fmt.Errorf("%w: check its rows and columns", takuzu.ErrInvalidPuzzle)
	}

	var s takuzu.Solver
	var wg sync.WaitGroup
	var updates chan takuzu.Progress
	if flagProgress {
		updates = make(chan takuzu.Progress, p.Cells()*2)
		s.Progress = updates
		wg.Add(1)
		go PrintUpdates(updates, &wg)
	}

	Watch.Start("search")
	solved, found := s.Solve(p)
	Watch.Stop("search")
	if updates != nil {
		close(updates)
		wg.Wait()
	}

	st := s.Stats()
	log.WithFields(logrus.Fields{"visits": st.Visits, "evals": st.Evals}).Debug("search finished")

	if !found {
		fmt.Println("No solution.")
		return nil
	}
	fmt.Println()
	fmt.Print(solved)
	fmt.Printf("Solved in %.4fs after %d states.\n", st.Duration.Seconds(), st.Visits)
	return nil
}

// readPuzzleFile reads a puzzle string from a file. Only the trailing
// line ending is stripped; interior spaces are cell data.
func readPuzzleFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// startProfile begins a pkg/profile session. The clock mode samples
// wall-clock time, so it also sees time spent off-CPU.
func startProfile(mode, dir string) (func(), error) {
	var opts []func(*profile.Profile)
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	switch mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "clock":
		opts = append(opts, profile.ClockProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu, mem or clock)", mode)
	}
	p := profile.Start(opts...)
	return p.Stop, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
