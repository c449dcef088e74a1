package main

import (
	"fmt"
	"os"
)

// Exit codes for the two failure classes. Per-source failures are
// reported on stderr and leave the exit status at success; only
// configuration errors are fatal.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitConfigError)
	}
	os.Exit(ExitSuccess)
}
