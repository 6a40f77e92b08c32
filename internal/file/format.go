package file

import "github.com/dustin/go-humanize"

// FormatBytes renders a byte count in IEC units, e.g. "1.5 KiB".
func FormatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// FormatFileSize renders a file length; negative lengths render as "0 B".
func FormatFileSize(size int64) string {
	if size < 0 {
		return "0 B"
	}
	return FormatBytes(uint64(size))
}
