// Package segment groups raw input lines into sentence blocks.
//
// A block is a run of comment lines followed by token lines, closed by one
// blank line. The Scanner only needs the current line to decide where a
// block ends, so arbitrarily large files are read in constant memory.
package segment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/udcheck/sentence"
)

// Boundary test ids reported by the Scanner.
const (
	ExtraEmptyLine      = "extra-empty-line"
	PseudoEmptyLine     = "pseudo-empty-line"
	MisplacedComment    = "misplaced-comment"
	EmptySentence       = "empty-sentence"
	NonUnixNewline      = "non-unix-newline"
	MissingEmptyLine    = "missing-empty-line"
	MissingFinalNewline = "missing-final-newline"
)

// Scanner is a pull-based iterator over the blocks of one input stream.
//
//	sc := segment.NewScanner(r)
//	for sc.Next() {
//		s := sc.Sentence()
//	}
//	if err := sc.Err(); err != nil { ... }
//	defects := sc.Trailing()
type Scanner struct {
	r    *bufio.Reader
	line int

	sentence *sent.Sentence

	// pending collects defects met between two blocks; they are handed to
	// the next block, or to trailing at end of input.
	pending  []sent.Defect
	trailing []sent.Defect

	err  error
	done bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next advances to the next block. It returns false at end of input or on a
// read error; Err tells them apart.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	var b *sent.Sentence
	for {
		text, cr, ok, err := s.readLine()
		if err != nil {
			s.err = err
			s.done = true
			s.sentence = nil
			return false
		}

		if !ok {
			s.done = true
			if b != nil {
				s.trailing = append(s.trailing, sent.Defect{
					Line:    s.line,
					TestID:  MissingEmptyLine,
					Message: "Missing empty line after the last sentence",
				})
				s.trailing = append(s.trailing, s.pending...)
				s.pending = nil
				s.finish(b)
				return true
			}
			s.trailing = append(s.trailing, s.pending...)
			s.pending = nil
			s.sentence = nil
			return false
		}

		if cr {
			s.defect(b, NonUnixNewline, "Only the unix-style LF line terminator is allowed")
		}

		if strings.TrimSpace(text) == "" {
			if text != "" {
				s.defect(b, PseudoEmptyLine, "Spurious line that appears empty but is not; there are whitespace characters")
			}
			if b == nil {
				s.defect(b, ExtraEmptyLine, "Spurious empty line. Only one empty line is expected after every sentence")
				continue
			}
			s.finish(b)
			return true
		}

		if b == nil {
			b = &sent.Sentence{Start: s.line, Defects: s.pending}
			s.pending = nil
		}

		l := sent.Line{Number: s.line, Text: text, CR: cr}
		if strings.HasPrefix(text, "#") {
			if len(b.Lines) > 0 {
				s.defect(b, MisplacedComment, "Spurious comment line. Comments are only allowed before a sentence")
			}
			b.Comments = append(b.Comments, l)
			continue
		}

		b.Add(l)
	}
}

// Sentence returns the block produced by the last successful Next.
func (s *Scanner) Sentence() *sent.Sentence {
	return s.sentence
}

// Line returns the number of the last line read.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first read error, excluding io.EOF.
func (s *Scanner) Err() error {
	return s.err
}

// Trailing returns the defects found after the last block. It is complete
// only once Next has returned false.
func (s *Scanner) Trailing() []sent.Defect {
	return s.trailing
}

func (s *Scanner) finish(b *sent.Sentence) {
	if len(b.Lines) == 0 {
		b.Defects = append(b.Defects, sent.Defect{
			Line:    b.Start,
			TestID:  EmptySentence,
			Message: "Comment lines without a following sentence",
		})
	}
	s.sentence = b
}

// defect records a problem at the current line, on the open block if any.
func (s *Scanner) defect(b *sent.Sentence, id, msg string) {
	d := sent.Defect{Line: s.line, TestID: id, Message: msg}
	if b != nil {
		b.Defects = append(b.Defects, d)
		return
	}
	s.pending = append(s.pending, d)
}

// readLine returns the next line without its terminator. ok is false when
// the input is exhausted.
func (s *Scanner) readLine() (text string, cr bool, ok bool, err error) {
	text, err = s.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, false, fmt.Errorf("read line %d: %w", s.line+1, err)
	}

	if err != nil && text == "" {
		return "", false, false, nil
	}

	s.line++
	if strings.HasSuffix(text, "\n") {
		text = text[:len(text)-1]
	} else {
		s.trailing = append(s.trailing, sent.Defect{
			Line:    s.line,
			TestID:  MissingFinalNewline,
			Message: "The last line does not end with a newline character",
		})
	}

	if strings.HasSuffix(text, "\r") {
		text = text[:len(text)-1]
		cr = true
	}

	return text, cr, true, nil
}
