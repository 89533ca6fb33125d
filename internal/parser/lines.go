package parser

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// eachLine calls fn for every '\n'-terminated line of r, without the
// newline. Lines may be any length; a final unterminated line is included.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			fn(strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
