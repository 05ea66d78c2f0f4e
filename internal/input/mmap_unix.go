//go:build darwin || linux

package input

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapFile maps path read-only and shared. The descriptor is closed right
// away; the mapping stays valid until munmap.
func mapFile(path string, size int64) ([]byte, bool, func() error, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, false, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer unix.Close(fd)

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, false, nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}
	// Advisory only; scanners walk the map front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, true, func() error {
		if err := unix.Munmap(data); err != nil {
			return fmt.Errorf("unmapping %s: %w", path, err)
		}
		return nil
	}, nil
}
