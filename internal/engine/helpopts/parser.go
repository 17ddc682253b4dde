// Package helpopts extracts option descriptors from the help text of a command-line tool.
package helpopts

import (
	"bufio"
	"io"
	"iter"
	"slices"
	"strings"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/zerr"
)

// sectionHeader is the line that opens the options table.
const sectionHeader = "options:"

type scanState int

const (
	seekingHeader scanState = iota
	inBlock
	done
)

// scanner walks help text one line at a time. It lives for a single Parse call.
type scanner struct {
	state   scanState
	pending []string
	options []domain.OptionDescriptor
}

// Parse returns the options listed in the first "Options:" block of lines, in order.
// Input without such a block yields an empty result.
func Parse(lines iter.Seq[string]) []domain.OptionDescriptor {
	s := &scanner{}
	for line := range lines {
		s.feed(line)
		if s.state == done {
			break
		}
	}
	s.flush()

	if s.options == nil {
		return []domain.OptionDescriptor{}
	}
	return s.options
}

// ParseLines parses help text that has already been split into lines.
func ParseLines(lines []string) []domain.OptionDescriptor {
	return Parse(slices.Values(lines))
}

// ParseReader parses help text read from r.
func ParseReader(r io.Reader) ([]domain.OptionDescriptor, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var readErr error
	lines := func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(strings.TrimSuffix(sc.Text(), "\r")) {
				return
			}
		}
		readErr = sc.Err()
	}

	options := Parse(lines)
	if readErr != nil {
		return nil, zerr.Wrap(readErr, domain.ErrProcessOutputFailed.Error())
	}
	return options, nil
}

func (s *scanner) feed(line string) {
	switch s.state {
	case seekingHeader:
		if strings.EqualFold(strings.TrimSpace(line), sectionHeader) {
			s.state = inBlock
		}
	case inBlock:
		switch {
		case strings.TrimSpace(line) == "":
			s.flush()
			s.state = done
		case domain.IsOptionHeader(line):
			s.flush()
			s.pending = []string{line}
		case s.pending != nil:
			s.pending = append(s.pending, line)
		}
	case done:
	}
}

// flush finalizes the buffered option, if any.
func (s *scanner) flush() {
	if s.pending == nil {
		return
	}
	// pending always starts with a line that matched IsOptionHeader.
	if opt, err := domain.NewOptionDescriptor(s.pending); err == nil {
		s.options = append(s.options, opt)
	}
	s.pending = nil
}
