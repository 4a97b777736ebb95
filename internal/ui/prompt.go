package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter wraps line-based terminal input. io.EOF from any method means
// the user closed stdin; callers unwind to quit.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// line prints the label and reads one trimmed line.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// intInRange reads an integer between lo and hi inclusive, re-prompting on
// bad input.
func (p *prompter) intInRange(label string, lo, hi int) (int, error) {
	for {
		raw, err := p.line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < lo || n > hi {
			p.printf("Ingresa un número entre %d y %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

// pick shows a numbered list and reads a 1-based selection, returning the
// zero-based index.
func (p *prompter) pick(label string, options []string) (int, error) {
	for i, opt := range options {
		p.printf("  %d) %s\n", i+1, opt)
	}
	n, err := p.intInRange(label, 1, len(options))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
