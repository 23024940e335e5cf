package sim

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Compressed trace streams are recognized by their leading magic bytes:
// the snappy framing stream identifier chunk and the LZ4 frame magic.
var (
	snappyMagic = []byte{0xff, 0x06, 0x00, 0x00}
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
)

// LoadTrace reads the trace file at path into an operation sequence.
// Snappy and LZ4 compressed traces are decompressed transparently; any
// other content is parsed as plain text.
func LoadTrace(path string) ([]Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrTraceUnreadable("LoadTrace", path, err)
	}
	defer file.Close()

	trace, err := ParseTrace(decompressingReader(bufio.NewReader(file)))
	if err != nil {
		return nil, err
	}
	return trace, nil
}

// decompressingReader sniffs the stream's magic bytes and wraps it in the
// matching decompressor, or returns it untouched for plain text
func decompressingReader(r *bufio.Reader) io.Reader {
	magic, err := r.Peek(4)
	if err != nil {
		// Too short to carry a compression header; let the parser
		// report whatever is actually there.
		return r
	}
	switch {
	case bytes.Equal(magic, snappyMagic):
		return snappy.NewReader(r)
	case bytes.Equal(magic, lz4Magic):
		return lz4.NewReader(r)
	default:
		return r
	}
}

// ParseTrace tokenizes a plain-text trace: one `<hex-address> <R|W>` pair
// per line, blank lines skipped. The address splits into a page number and
// an in-page offset under the 4KiB geometry. Parsing stops at the first
// malformed line; bad input aborts the run rather than being skipped.
func ParseTrace(r io.Reader) ([]Operation, error) {
	var trace []Operation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedTrace("ParseTrace", lineNo, line)
		}

		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 64)
		if err != nil {
			return nil, ErrMalformedTrace("ParseTrace", lineNo, line)
		}

		var mode AccessMode
		switch fields[1] {
		case "R", "r":
			mode = Read
		case "W", "w":
			mode = Write
		default:
			return nil, ErrMalformedTrace("ParseTrace", lineNo, line)
		}

		trace = append(trace, Operation{
			Page:   addr >> PageShift,
			Offset: addr & OffsetMask,
			Mode:   mode,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrTraceUnreadable("ParseTrace", "stream", err)
	}
	return trace, nil
}
