package source

import (
	"bufio"
	"fmt"
	"os"
)

// FileSource reads an existing file line by line into the stdout channel,
// then terminates. Stderr is never written to.
type FileSource struct {
	shouldDie
	name   string
	path   string
	stdout chan string
	stderr chan string
}

// NewFileSource opens path and starts streaming it into the stdout
// channel in its own goroutine. Errors on open are returned immediately
// (spec.md's "cannot-read" construction-time error kind) rather than
// surfaced through the channels.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	fs := &FileSource{
		name:   path,
		path:   path,
		stdout: make(chan string, 4096),
		stderr: make(chan string),
	}

	go fs.run(f)
	return fs, nil
}

func (fs *FileSource) run(f *os.File) {
	defer f.Close()
	defer close(fs.stdout)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if fs.Dead() {
			return
		}
		fs.stdout <- scanner.Text()
	}
}

func (fs *FileSource) Name() string          { return fs.name }
func (fs *FileSource) Kind() Kind            { return KindFile }
func (fs *FileSource) Stdout() <-chan string { return fs.stdout }
func (fs *FileSource) Stderr() <-chan string { return fs.stderr }
