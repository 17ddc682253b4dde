package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// aliasSeparator separates short and long aliases in a flag column, e.g. "-v, --verbose".
	aliasSeparator = ", "

	// columnSeparator separates the flag column from the description column.
	columnSeparator = "  "

	// ellipsisWidth is the room Description leaves for a caller-appended "...".
	ellipsisWidth = 3
)

var optionHeaderRegex = regexp.MustCompile(`^\s*-+.*$`)

// IsOptionHeader reports whether line starts a new option entry in a help table.
func IsOptionHeader(line string) bool {
	return optionHeaderRegex.MatchString(line)
}

// OptionDescriptor is one command-line option extracted from help text.
type OptionDescriptor struct {
	// Flag is the canonical switch, the long alias when both forms are listed.
	Flag string
	// Arguments are the placeholder tokens following the flag, e.g. "<PATH>".
	// It is never nil.
	Arguments []string

	description string
}

// NewOptionDescriptor builds a descriptor from a header line and its continuation lines.
// It fails with ErrParse when lines is empty or the first line is not an option header.
func NewOptionDescriptor(lines []string) (OptionDescriptor, error) {
	if len(lines) == 0 {
		return OptionDescriptor{}, zerr.With(ErrParse, "reason", "no lines")
	}

	header := lines[0]
	if !IsOptionHeader(header) {
		return OptionDescriptor{}, zerr.With(ErrParse, "line", header)
	}

	flagPart, rest, _ := strings.Cut(strings.TrimSpace(header), columnSeparator)
	if i := strings.LastIndex(flagPart, aliasSeparator); i >= 0 {
		flagPart = flagPart[i+len(aliasSeparator):]
	}

	fields := strings.Fields(flagPart)
	if len(fields) == 0 {
		return OptionDescriptor{}, zerr.With(ErrParse, "line", header)
	}

	parts := make([]string, 0, len(lines))
	if rest = strings.TrimSpace(rest); rest != "" {
		parts = append(parts, rest)
	}
	for _, line := range lines[1:] {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}

	return OptionDescriptor{
		Flag:        fields[0],
		Arguments:   append([]string{}, fields[1:]...),
		description: strings.Join(parts, " "),
	}, nil
}

// NewOption creates a descriptor from already separated parts.
func NewOption(flag string, arguments []string, description string) OptionDescriptor {
	return OptionDescriptor{
		Flag:        flag,
		Arguments:   append([]string{}, arguments...),
		description: description,
	}
}

// FullDescription returns the complete description text.
func (o OptionDescriptor) FullDescription() string {
	return o.description
}

// Description returns the description cut to fit maxLength characters.
//
// When the description is longer than maxLength and maxLength is greater than 3,
// only maxLength-3 characters are returned so the caller can append "...".
// For maxLength of 3 or less the first maxLength characters are returned as is.
func (o OptionDescriptor) Description(maxLength int) string {
	runes := []rune(o.description)
	if maxLength >= len(runes) {
		return o.description
	}
	if maxLength > ellipsisWidth {
		return string(runes[:maxLength-ellipsisWidth])
	}
	return string(runes[:max(maxLength, 0)])
}

// Usage renders the flag together with its argument placeholders.
func (o OptionDescriptor) Usage() string {
	if len(o.Arguments) == 0 {
		return o.Flag
	}
	return o.Flag + " " + strings.Join(o.Arguments, " ")
}

// MarshalJSON encodes the descriptor including its description.
// Placeholders such as "<PATH>" are written without HTML escaping.
func (o OptionDescriptor) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		Flag        string   `json:"flag"`
		Arguments   []string `json:"arguments"`
		Description string   `json:"description"`
	}{
		Flag:        o.Flag,
		Arguments:   o.Arguments,
		Description: o.description,
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
