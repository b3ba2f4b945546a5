package main

import (
	"fmt"
	"os"

	"gitlab.com/yarbelk/ccwc/lib/wc"
)

func main() {
	command, err := wc.Classify(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch command.Action {
	case wc.ShowHelp:
		wc.Help(os.Stdout)
	case wc.ShowVersion:
		wc.Version(os.Stdout)
	case wc.UsageError:
		// usage complaints go to stdout and the exit status stays zero
		wc.InvalidOption(os.Stdout, command.Invalid)
	case wc.Proceed:
		if err := wc.Main(os.Stdout, command.Options); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
