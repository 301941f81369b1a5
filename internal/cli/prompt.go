package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// Prompter reads one line of input per prompt.
// Reads happen on a background goroutine so a blocked read does not
// prevent ReadLine from returning when ctx is canceled.
type Prompter struct {
	ctx    context.Context
	r      *bufio.Reader
	out    io.Writer
	once   sync.Once
	stop   sync.Once
	lines  chan lineResult
	done   chan struct{}
	quit   chan struct{}
	closed bool
	err    error
}

// NewPrompter creates a Prompter reading from r and writing prompts to out.
func NewPrompter(ctx context.Context, r io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		ctx:   ctx,
		r:     bufio.NewReader(r),
		out:   out,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
		quit:  make(chan struct{}),
	}
}

// ReadLine writes prompt and returns the next line with its "\n" or "\r\n"
// terminator removed. Returns io.EOF once input is exhausted, or ctx.Err()
// if the context is canceled while waiting.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if p.closed {
		return "", io.EOF
	}
	fmt.Fprint(p.out, prompt)
	p.once.Do(func() { go p.readLoop() })

	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case <-p.done:
		p.closed = true
		return "", io.EOF
	case res := <-p.lines:
		if res.err != nil {
			p.closed = true
			if errors.Is(res.err, io.EOF) {
				return "", io.EOF
			}
			p.err = res.err
			return "", res.err
		}
		return res.line, nil
	}
}

// Closed reports whether input has been exhausted or failed.
func (p *Prompter) Closed() bool {
	return p.closed
}

// Err returns the read error that closed the input, other than io.EOF.
func (p *Prompter) Err() error {
	return p.err
}

// Close marks the input as exhausted and releases the reader goroutine the
// next time it has a line to deliver. A read already blocked in the
// underlying reader stays blocked until that reader returns.
func (p *Prompter) Close() {
	p.closed = true
	p.stop.Do(func() { close(p.quit) })
}

func (p *Prompter) readLoop() {
	defer close(p.done)
	for {
		line, err := p.r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !p.send(lineResult{line: line}) {
				return
			}
		}
		if err != nil {
			p.send(lineResult{err: err})
			return
		}
	}
}

func (p *Prompter) send(res lineResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.quit:
		return false
	case <-p.ctx.Done():
		return false
	}
}
