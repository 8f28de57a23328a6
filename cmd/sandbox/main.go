package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/satbox/internal/config"
	"github.com/tomz197/satbox/internal/loop"
	"github.com/tomz197/satbox/internal/scene"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run drives one sandbox on the terminal behind in and returns the exit
// code. Deferred cleanup (raw mode, log file) happens before main exits.
func run(in *os.File, out, errOut io.Writer) int {
	sc := scene.Default()
	if path := config.GetEnv("SANDBOX_SCENE", ""); path != "" {
		var err error
		sc, err = scene.LoadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "failed to load scene: %v\n", err)
			return 1
		}
	}

	// The canvas owns stdout, so logs only go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SANDBOX_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(errOut, "failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "sandbox")

	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		fmt.Fprintf(errOut, "failed to enable raw mode: %v\n", err)
		return 1
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	err = loop.Run(bufio.NewReader(in), out, loop.Options{Logger: logger, Scene: sc})
	if err != nil {
		logger.Error("sandbox error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(errOut, "sandbox error: %v\n", err)
		return 1
	}
	return 0
}
