// Package stream provides buffered copying, best-effort batch closing and
// text reading under a named character encoding.
package stream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// BufferSize is the chunk size used by Copy.
const BufferSize = 2048

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "UTF-8"

// ErrUnknownEncoding is returned for an encoding name that cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown character encoding")

// Logger receives close failures reported by Closings.
var Logger = log.New("stream")

// Copy copies src to dst in BufferSize chunks and returns the number of bytes
// written. Neither side is closed. A nil side copies nothing.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	if dst == nil || src == nil {
		return 0, nil
	}
	buf := make([]byte, BufferSize)
	// Hide ReaderFrom/WriterTo so the chunk size always applies.
	return io.CopyBuffer(struct{ io.Writer }{dst}, struct{ io.Reader }{src}, buf)
}

// CopyClose copies like Copy, then closes src and/or dst when requested and
// the side implements io.Closer. Closing happens on every return path,
// including a failed copy; close failures are logged, not returned.
func CopyClose(dst io.Writer, src io.Reader, closeSrc, closeDst bool) (n int64, err error) {
	defer func() {
		if closeSrc {
			closeIfCloser(src)
		}
		if closeDst {
			closeIfCloser(dst)
		}
	}()
	return Copy(dst, src)
}

// Closings closes every non-nil closer in order. A failing Close is logged
// and the remaining closers are still closed.
func Closings(closers ...io.Closer) {
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			Logger.Warnf("close failed: %v", err)
		}
	}
}

func closeIfCloser(v any) {
	if c, ok := v.(io.Closer); ok && c != nil {
		Closings(c)
	}
}

// ReadString reads r to the end and decodes it with the named encoding.
// An empty name means DefaultEncoding.
func ReadString(r io.Reader, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err := Copy(&sb, transform.NewReader(r, enc.NewDecoder())); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return sb.String(), nil
}

// ReadFile reads the file at path as text in the named encoding.
func ReadFile(path, encodingName string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer Closings(f)
	return ReadString(f, encodingName)
}

// ReadLines reads r as text and splits it into lines on "\n", "\r\n" or a
// lone "\r".
// Line terminators are not included and a trailing terminator does not
// produce an empty last line.
func ReadLines(r io.Reader, encodingName string) ([]string, error) {
	text, err := ReadString(r, encodingName)
	if err != nil {
		return nil, err
	}

	lines := []string{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, BufferSize), len(text)+1)
	scanner.Split(scanLines)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is bufio.ScanLines that also ends a line at a "\r" not followed
// by "\n".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadFileLines reads the file at path as lines in the named encoding.
func ReadFileLines(path, encodingName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer Closings(f)
	return ReadLines(f, encodingName)
}

// lookupEncoding accepts WHATWG labels ("utf-8", "gbk", "latin1") and IANA
// names ("ISO-8859-1", "Shift_JIS").
func lookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}
