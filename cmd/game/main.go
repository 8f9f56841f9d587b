package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/tomz197/shooty/internal/config"
	"github.com/tomz197/shooty/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Seed: config.GetEnvInt64("SHOOTY_SEED", time.Now().UnixNano()),
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
