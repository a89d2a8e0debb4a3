// Package prompt holds filename prompters for the editor.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line asks on W and reads one line from R.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Ask prints "message [def]: " and reads an answer. An empty line takes the
// default. EOF, read errors and blank answers count as cancelled.
func (l *Line) Ask(message, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(l.w, "%s [%s]: ", message, def)
	} else {
		fmt.Fprintf(l.w, "%s: ", message)
	}
	line, err := l.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		line = def
	}
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

// Fixed always answers with the same name.
type Fixed string

func (f Fixed) Ask(string, string) (string, bool) {
	if strings.TrimSpace(string(f)) == "" {
		return "", false
	}
	return string(f), true
}

// Slot hands out an answer set just before a save. The answer is consumed by
// the next Ask so a stale name is never reused.
type Slot struct {
	answer string
	ok     bool
	last   string
}

func (s *Slot) Set(answer string) { s.answer, s.ok = answer, true }
func (s *Slot) Cancel()           { s.answer, s.ok = "", false }

// LastMessage is the message passed to the most recent Ask.
func (s *Slot) LastMessage() string { return s.last }

func (s *Slot) Ask(message, _ string) (string, bool) {
	s.last = message
	answer, ok := s.answer, s.ok
	s.Cancel()
	if !ok || strings.TrimSpace(answer) == "" {
		return "", false
	}
	return answer, true
}
