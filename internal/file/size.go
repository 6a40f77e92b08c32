package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// SizeUnit is a binary storage unit; each is 1024 times the previous.
type SizeUnit int64

const (
	B SizeUnit = 1 << (10 * iota)
	K
	M
	G
	T
)

// Bytes returns the number of bytes in one unit.
func (u SizeUnit) Bytes() int64 {
	return int64(u)
}

func (u SizeUnit) String() string {
	switch u {
	case B:
		return "B"
	case K:
		return "K"
	case M:
		return "M"
	case G:
		return "G"
	case T:
		return "T"
	default:
		return fmt.Sprintf("SizeUnit(%d)", int64(u))
	}
}

// ParseSizeUnit reads a unit name such as "k", "MB" or "GiB". An empty name is B.
func ParseSizeUnit(name string) (SizeUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "B":
		return B, nil
	case "K", "KB", "KIB":
		return K, nil
	case "M", "MB", "MIB":
		return M, nil
	case "G", "GB", "GIB":
		return G, nil
	case "T", "TB", "TIB":
		return T, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}

// ConvertSize converts bytes to unit, rounding any remainder up.
// A 1275 byte file is 2 K and 1 M. Negative counts also come out as their
// ceiling: -1275 bytes is -1 K.
func ConvertSize(bytes int64, unit SizeUnit) int64 {
	n := bytes / unit.Bytes()
	if bytes%unit.Bytes() > 0 {
		n++
	}
	return n
}

// Size returns the length of the file at path in unit.
func Size(path string, unit SizeUnit) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrExpectedFile, path)
	}
	return ConvertSize(info.Size(), unit), nil
}

// TotalSpace returns the capacity of the filesystem holding path in unit.
func TotalSpace(path string, unit SizeUnit) (int64, error) {
	usage, err := rootUsage(path)
	if err != nil {
		return 0, err
	}
	return ConvertSize(clampInt64(usage.Total), unit), nil
}

// FreeSpace returns the space left on the filesystem holding path in unit.
func FreeSpace(path string, unit SizeUnit) (int64, error) {
	usage, err := rootUsage(path)
	if err != nil {
		return 0, err
	}
	return ConvertSize(clampInt64(usage.Free), unit), nil
}

func rootUsage(path string) (*disk.UsageStat, error) {
	root, err := Root(path)
	if err != nil {
		return nil, err
	}
	usage, err := disk.Usage(root)
	if err != nil {
		return nil, fmt.Errorf("disk usage of %s: %w", root, err)
	}
	return usage, nil
}

func clampInt64(v uint64) int64 {
	const maxInt64 = 1<<63 - 1
	if v > maxInt64 {
		return maxInt64
	}
	return int64(v)
}
