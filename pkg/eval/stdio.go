package eval

import (
	"bufio"
	"os"
)

// stdinReader returns a process-wide buffered reader over os.Stdin so
// repeated (read) calls with no port argument advance through the
// stream instead of re-reading from the start.
var sharedStdinReader *bufio.Reader

func stdinReader() *bufio.Reader {
	if sharedStdinReader == nil {
		sharedStdinReader = bufio.NewReader(os.Stdin)
	}
	return sharedStdinReader
}
