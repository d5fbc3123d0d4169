package logging

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// maxCapturedLine bounds one forwarded line.
const maxCapturedLine = 256 * 1024

// forwardLines logs every non-empty line of r at debug level until r is
// exhausted. It returns the number of lines forwarded.
func forwardLines(ctx context.Context, r io.Reader, stream string) int {
	log := FromContext(ctx)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxCapturedLine)

	n := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		log.Debug().Str("stream", stream).Msg(line)
		n++
	}
	if err := scanner.Err(); err != nil {
		log.Debug().Err(err).Str("stream", stream).Msg("output capture ended")
	}
	return n
}
