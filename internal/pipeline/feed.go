package pipeline

import (
	"bufio"
	"io"
	"strings"
)

// Feed reads r line by line and pushes every non-blank line into the
// distribution queue. Line numbers count all lines read, blank ones
// included, so a line's number always matches its position in the source.
//
// Feed blocks while the queue is full, which is how a slow pipeline applies
// backpressure to the producer. Returns the number of lines pushed and the
// reader error, if any.
func (p *Pool) Feed(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)

	lineNumber := 0
	pushed := 0
	for sc.Scan() {
		lineNumber++
		content := sc.Text()
		if strings.TrimSpace(content) == "" {
			continue
		}
		p.Push(RawLine{Content: content, LineNumber: lineNumber})
		pushed++
	}

	return pushed, sc.Err()
}
