package wc

import (
	"fmt"
	"strings"
	"unicode"
)

// Metric identifies one countable quantity.
type Metric int

const (
	LineCount Metric = iota
	WordCount
	CharacterCount
	ByteCount
	MaxLineLength

	nmetrics
)

func (m Metric) String() string {
	switch m {
	case LineCount:
		return "lines"
	case WordCount:
		return "words"
	case CharacterCount:
		return "chars"
	case ByteCount:
		return "bytes"
	case MaxLineLength:
		return "max-line-length"
	default:
		return "unknown"
	}
}

// report order when no count flag is given
var defaultMetrics = []Metric{LineCount, WordCount, ByteCount}

// Every column is padded to six characters, except that a run of exactly
// one source with exactly one metric prints bare.
const displayWidth = 6

// Options are the classified arguments: which counts to print, in the
// order their flags were first seen, plus the input sources.
type Options struct {
	metrics []Metric
	seen    [nmetrics]bool

	Files []string
	Stdin bool
}

// AddMetric appends m to the report order on first mention; repeats are
// ignored.
func (o *Options) AddMetric(m Metric) {
	if o.seen[m] {
		return
	}
	o.seen[m] = true
	o.metrics = append(o.metrics, m)
}

// Metrics returns the report order. Column order follows first-seen flag
// order, not the canonical order the help text advertises.
func (o Options) Metrics() []Metric {
	if len(o.metrics) == 0 {
		return defaultMetrics
	}
	return o.metrics
}

// ReadsStdin reports whether the run consumes standard input: an explicit
// "-" argument, or no files at all.
func (o Options) ReadsStdin() bool {
	return o.Stdin || len(o.Files) == 0
}

func (o Options) sources() int {
	n := len(o.Files)
	if o.ReadsStdin() {
		n++
	}
	return n
}

// Width is the column width for this run.
func (o Options) Width() int {
	if len(o.Metrics()) == 1 && o.sources() == 1 {
		return 0
	}
	return displayWidth
}

// Counts are the tallies for one source.
type Counts struct {
	Lines, Words, Chars, Bytes, MaxLine uint
}

// Get returns the tally for a single metric.
func (c Counts) Get(m Metric) uint {
	switch m {
	case LineCount:
		return c.Lines
	case WordCount:
		return c.Words
	case CharacterCount:
		return c.Chars
	case ByteCount:
		return c.Bytes
	case MaxLineLength:
		return c.MaxLine
	default:
		return 0
	}
}

// Add folds other into c element-wise, max line length included.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
	c.Bytes += other.Bytes
	c.MaxLine += other.MaxLine
}

// Count tallies content in a single pass. A line ends at \n or \r\n, and
// a final unterminated line still counts when non-empty; the \r of a \r\n
// pair belongs to the terminator, so it never adds to the line length.
// Words are maximal runs of non-whitespace runes.
func Count(content string) Counts {
	counts := Counts{Bytes: uint(len(content))}
	var lineLen uint
	var inWord, prevCR bool

	for _, r := range content {
		counts.Chars++
		if r == '\n' {
			if inWord {
				counts.Words++
				inWord = false
			}
			length := lineLen
			if prevCR {
				length--
			}
			if length > counts.MaxLine {
				counts.MaxLine = length
			}
			counts.Lines++
			lineLen = 0
			prevCR = false
			continue
		}
		if unicode.IsSpace(r) {
			if inWord {
				counts.Words++
				inWord = false
			}
		} else {
			inWord = true
		}
		lineLen++
		prevCR = r == '\r'
	}
	if inWord {
		counts.Words++
	}
	if lineLen > 0 {
		counts.Lines++
		if lineLen > counts.MaxLine {
			counts.MaxLine = lineLen
		}
	}
	return counts
}

// Results are the counts for one source plus its display label.
type Results struct {
	Counts

	Label string
}

// Printf renders the row: each requested count right-aligned and followed
// by a space, then the label right-aligned in the same width. An empty
// label still pads to the field width, so an implicit stdin row keeps
// its columns.
func (r Results) Printf(options Options) string {
	width := options.Width()
	builder := strings.Builder{}
	for _, m := range options.Metrics() {
		builder.WriteString(fmt.Sprintf("%*d ", width, r.Get(m)))
	}
	builder.WriteString(fmt.Sprintf("%*s", width, r.Label))
	builder.WriteRune('\n')
	return builder.String()
}
