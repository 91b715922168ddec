package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var (
	log = logrus.New()

	algorithmName string
	timeout       time.Duration
	logFile       string
)

func init() {
	const (
		algorithmUsage = "solving algorithm (backtracking or fixpoint)"
		timeoutUsage   = "give up after this long"
		logFileUsage   = "append logs to a rotating file"
	)
	flag.StringVar(&algorithmName, "algorithm", "backtracking", algorithmUsage)
	flag.StringVar(&algorithmName, "a", "backtracking", algorithmUsage+" (shorthand)")
	flag.DurationVar(&timeout, "timeout", 0, timeoutUsage)
	flag.StringVar(&logFile, "log-file", "", logFileUsage)
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file: ", err)
	}
	log.AddHook(hook)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

func main() {
	flag.Parse()
	setupLogging()

	algorithm, err := sudoku.ParseAlgorithm(algorithmName)
	if err != nil {
		log.Fatal(err)
	}
	solver, err := sudoku.New(algorithm)
	if err != nil {
		log.Fatal(err)
	}

	text, err := readInput(flag.Args())
	if err != nil {
		log.Fatal("unable to read puzzle: ", err)
	}
	puzzle, err := sudoku.Parse(text)
	if err != nil {
		log.Fatal("unable to parse puzzle: ", err)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := solver.Solve(ctx, puzzle)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		log.WithFields(logrus.Fields{
			"algorithm": algorithm.String(),
			"duration":  elapsed.String(),
		}).Info("solved")
		fmt.Print(out)
	case errors.Is(err, sudoku.ErrNeedsSearch):
		log.Warn("elimination stalled, retry with -a backtracking")
		fmt.Print(out)
		os.Exit(1)
	case errors.Is(err, sudoku.ErrNoSolution),
		errors.Is(err, sudoku.ErrContradiction),
		errors.Is(err, sudoku.ErrInvalidPuzzle):
		log.Error(err)
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}
