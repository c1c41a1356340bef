package protocol

import (
	"bufio"
	"io"
	"strings"
)

// Reader consumes reply lines from a DICT server stream.
//
// It provides the three read shapes the protocol is built from: a single
// raw line, a single status line, and a multi-line text block terminated
// by a lone "." line. Reads block until a full line arrives; any I/O or
// parse error leaves the stream position undefined.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader buffering the given stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine reads one reply line with the trailing line terminator removed.
// Both CRLF and bare LF terminators are accepted.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ReadStatus reads one line and parses it as a status line.
func (r *Reader) ReadStatus() (Status, error) {
	line, err := r.ReadLine()
	if err != nil {
		return Status{}, err
	}
	return ParseStatus(line)
}

// ExpectStatus reads one status line and requires its code to equal want.
// A well-formed line with a different code yields *UnexpectedStatusError.
func (r *Reader) ExpectStatus(want int) (Status, error) {
	st, err := r.ReadStatus()
	if err != nil {
		return Status{}, err
	}
	if st.Code != want {
		return Status{}, &UnexpectedStatusError{Want: want, Status: st}
	}
	return st, nil
}

// ReadTextBlock reads raw lines until a line equal to the "." terminator.
// The terminator is consumed but not returned. An error before the
// terminator (including EOF) aborts the block; no partial result is
// usable in that case.
func (r *Reader) ReadTextBlock() ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadLine()
		if err != nil {
			return nil, err
		}
		if line == TextTerminator {
			return lines, nil
		}
		lines = append(lines, line)
	}
}
