package lib

import (
	"io"
	"os"
	"strings"
	"syscall"
)

// Stdin is the stream consumed whenever a source asks for standard input.
// A variable so tests can substitute a reader.
var Stdin io.Reader = os.NewFile(uintptr(syscall.Stdin), "/dev/stdin")

// Resolution classifies what a source name turned out to be.
type Resolution int

const (
	Readable Resolution = iota
	IsDirectory
	NotFound
)

// ReadSource resolves a named file source to its full content.
// NotFound and IsDirectory are recoverable outcomes for the caller to
// report; a read failure on a file that stat said was there is returned
// as an error and aborts the run.
func ReadSource(name string) (string, Resolution, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return "", NotFound, nil
	}
	if fi.IsDir() {
		return "", IsDirectory, nil
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return "", Readable, err
	}
	return string(content), Readable, nil
}

// ReadStdin drains standard input to a string.
func ReadStdin() (string, error) {
	content, err := io.ReadAll(Stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadFiles0 reads a NUL-delimited name list from the named file, or from
// standard input when name is "-". The split is literal: a trailing NUL
// produces a trailing empty name, and an empty list produces one empty
// name.
func ReadFiles0(name string) ([]string, error) {
	var content string
	var err error
	if name == "-" {
		content, err = ReadStdin()
	} else {
		var b []byte
		b, err = os.ReadFile(name)
		content = string(b)
	}
	if err != nil {
		return nil, err
	}
	return strings.Split(content, "\x00"), nil
}
