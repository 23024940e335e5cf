package sim

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// LoadTraceMmap parses the trace file through a read-only memory mapping,
// avoiding the buffered copy for large recorded workloads. Compressed
// traces gain nothing from mapping and are routed through LoadTrace.
func LoadTraceMmap(path string) ([]Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrTraceUnreadable("LoadTraceMmap", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, ErrTraceUnreadable("LoadTraceMmap", path, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, ErrTraceUnreadable("LoadTraceMmap", path, err)
	}
	defer unix.Munmap(data)

	if len(data) >= 4 {
		magic := data[:4]
		if bytes.Equal(magic, snappyMagic) || bytes.Equal(magic, lz4Magic) {
			return LoadTrace(path)
		}
	}

	return ParseTrace(bytes.NewReader(data))
}
