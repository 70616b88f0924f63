package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single log line; Apache lines with long user agents stay well below it.
const maxLineSize = 1024 * 1024

// FileSource implements LogSource for reading a single log file.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	done    bool
}

// NewFileSource creates a LogSource that reads from the given file.
// The file is opened on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path this source reads from.
func (s *FileSource) Path() string {
	return s.path
}

// Next returns the next log line.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner.Scan() {
		s.lineNum++
		return &LogLine{
			Content: s.scanner.Text(),
			Source:  s.path,
			LineNum: s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.done = true
	if err := s.Close(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.lineNum = 0

	return nil
}
