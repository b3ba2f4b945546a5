package wc

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gitlab.com/yarbelk/ccwc/lib"
)

const ProgramName = "ccwc"

// Action is what the argument list asked the program to do.
type Action int

const (
	Proceed Action = iota
	ShowHelp
	ShowVersion
	UsageError
)

// Command is the classified outcome of an argument list. Invalid carries
// the offending option character when Action is UsageError.
type Command struct {
	Action  Action
	Options Options
	Invalid string
}

const files0Prefix = "--files0-from="

// Classify walks the raw arguments (program name excluded) and decides
// what to do. Matching is token-exact: combined short flags and
// --flag=value forms are not options here, they are usage errors.
// --help, --version and a usage error all win immediately and leave the
// remaining arguments unexamined. A --files0-from list is expanded in
// place, so the file list is complete and ordered before any counting
// starts; an unreadable list file is the one fatal error.
func Classify(args []string) (Command, error) {
	var options Options
	for _, arg := range args {
		switch arg {
		case "-c", "--bytes":
			options.AddMetric(ByteCount)
		case "-m", "--chars":
			options.AddMetric(CharacterCount)
		case "-l", "--lines":
			options.AddMetric(LineCount)
		case "-L", "--max-line-length":
			options.AddMetric(MaxLineLength)
		case "-w", "--words":
			options.AddMetric(WordCount)
		case "-":
			options.Stdin = true
		case "--version":
			return Command{Action: ShowVersion}, nil
		case "--help":
			return Command{Action: ShowHelp}, nil
		default:
			if strings.HasPrefix(arg, files0Prefix) {
				names, err := lib.ReadFiles0(strings.TrimPrefix(arg, files0Prefix))
				if err != nil {
					return Command{}, err
				}
				options.Files = append(options.Files, names...)
				continue
			}
			if strings.HasPrefix(arg, "-") {
				r, _ := utf8.DecodeRuneInString(arg[1:])
				return Command{Action: UsageError, Invalid: string(r)}, nil
			}
			options.Files = append(options.Files, arg)
		}
	}
	return Command{Action: Proceed, Options: options}, nil
}

// Main runs the counting loop for a Proceed command, writing count rows
// and per-source diagnostics to w as each source is handled. Standard
// input comes first when it is read at all, then the files in list order,
// then the total row once more than one file was named. Missing files and
// directories are reported inline and never abort the loop; an unreadable
// stdin or an unreadable regular file does.
func Main(w io.Writer, options Options) error {
	if options.ReadsStdin() {
		content, err := lib.ReadStdin()
		if err != nil {
			return err
		}
		label := ""
		if options.Stdin {
			label = "-"
		}
		fmt.Fprint(w, Results{Counts: Count(content), Label: label}.Printf(options))
	}

	var total Counts
	for _, name := range options.Files {
		content, resolution, err := lib.ReadSource(name)
		switch resolution {
		case lib.NotFound:
			fmt.Fprintf(w, "%s: %s: No such file or directory\n", ProgramName, name)
			continue
		case lib.IsDirectory:
			fmt.Fprintf(w, "%s: %s: Is a directory\n", ProgramName, name)
		}
		if err != nil {
			return err
		}
		counts := Count(content)
		total.Add(counts)
		fmt.Fprint(w, Results{Counts: counts, Label: name}.Printf(options))
	}

	if len(options.Files) > 1 {
		fmt.Fprint(w, Results{Counts: total, Label: "total"}.Printf(options))
	}
	return nil
}

// Help writes the usage text. It advertises a canonical column order
// even though explicit flags report in first-seen order.
func Help(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// Version writes the version banner.
func Version(w io.Writer) {
	fmt.Fprint(w, versionText)
}

// InvalidOption writes the two-line diagnostic for an unrecognized
// option character.
func InvalidOption(w io.Writer, char string) {
	fmt.Fprintf(w, "%s: invalid option -- '%s'\n", ProgramName, char)
	fmt.Fprintf(w, "Try '%s --help' for more information\n", ProgramName)
}

const helpText = `ccwc - print newline, word, and byte counts for each file

Usage: ccwc [OPTIONS]... [FILE]...
   or: ccwc [OPTIONS]... --files0-from=F

Description:

Print newline, word and byte counts for each FILE, and total line
if more than one FILE is specified. A word is a non-zero-length sequence
of characters delimited by white space.

With no FILE or when FILE is - read standard input

The options below may be used to select which counts are printed, always
in the following order: newline, word, character, byte, maximum line length.

Options:
    -c, --bytes             Print the byte counts
    -m, --chars             Print the character counts
    -l, --lines             Print the newline counts
        --files0-from=F     Read input from the files specified by
                              NUL-terminated names in file F;
                              If F is - then read names from standard input
    -L, --max-line-length   Print the maximum line length
    -w, --words             Print the word counts
        --help              Display this help and exit
        --version           Output version information and exit
`

const versionText = `ccwc 0.1.0
License MIT: The MIT License <https://opensource.org/license/mit>
This is free software: you are free to change and redistribute it.
The software is provided "as is", without warranty of any kind.
`
