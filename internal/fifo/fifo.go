//go:build unix

// Package fifo reads and writes line-oriented messages over a named pipe
package fifo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ErrNotPipe is an error when the path exists but is not a named pipe
var ErrNotPipe = errors.New("not a named pipe")

// Pipe is a named pipe on the filesystem
type Pipe struct {
	Path string
}

// New returns a pipe for the path. The pipe is not created until Create() is called.
func New(path string) *Pipe {
	return &Pipe{Path: path}
}

// Create will create the named pipe. An existing named pipe is reused.
func (p *Pipe) Create() error {
	if err := unix.Mkfifo(p.Path, 0600); err != nil {
		if !errors.Is(err, unix.EEXIST) {
			return fmt.Errorf("could not create pipe %s: %w", p.Path, err)
		}

		info, err := os.Stat(p.Path)
		if err != nil {
			return err
		}

		if info.Mode()&os.ModeNamedPipe == 0 {
			return fmt.Errorf("%s: %w", p.Path, ErrNotPipe)
		}
	}

	return nil
}

// Remove will remove the named pipe. A missing pipe is not an error.
func (p *Pipe) Remove() error {
	if err := os.Remove(p.Path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Write sends a single line to the pipe.
// This blocks until a reader has the pipe open.
func (p *Pipe) Write(msg string) error {
	file, err := os.OpenFile(p.Path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(file, msg); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// Listen calls fn for every line written to the pipe until ctx is cancelled.
// The pipe is opened read-write so that it stays open between writers.
// Cancelling ctx interrupts a pending read on Linux; elsewhere Listen returns after the next line.
func (p *Pipe) Listen(ctx context.Context, fn func(line string)) error {
	file, err := os.OpenFile(p.Path, os.O_RDWR, 0)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = file.Close()
		case <-stop:
			_ = file.Close()
		}
	}()

	logrus.WithField("path", p.Path).Debug("listening on pipe")

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fn(scanner.Text())
	}

	if ctx.Err() != nil {
		return nil
	}

	return scanner.Err()
}
