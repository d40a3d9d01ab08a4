// Package unicodedata reads the Unicode emoji-test.txt data file, which
// assigns every emoji sequence to a group and subgroup.
//
// File format:
//
//	# group: Smileys & Emotion
//	# subgroup: face-smiling
//	1F600 ; fully-qualified # 😀 E1.0 grinning face
package unicodedata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Initial context before the first group and subgroup headers.
const (
	DefaultGroup    = "Symbols"
	DefaultSubgroup = "Other"
)

// Qualification statuses of data lines.
const (
	StatusComponent          = "component"
	StatusFullyQualified     = "fully-qualified"
	StatusMinimallyQualified = "minimally-qualified"
	StatusUnqualified        = "unqualified"
)

const (
	groupPrefix    = "# group:"
	subgroupPrefix = "# subgroup:"
	maxLineSize    = 64 * 1024
)

// Line is one data line of emoji-test.txt.
type Line struct {
	CodePoints []rune
	Status     string
	Emoji      string
	Version    string // e.g. "E1.0"
	Name       string // CLDR short name, e.g. "thumbs up: light skin tone"
	Group      string
	Subgroup   string
	LineNo     int
}

// Sequence returns the emoji built from the line's code points.
func (l Line) Sequence() string {
	return string(l.CodePoints)
}

// File is a parsed emoji-test.txt.
type File struct {
	Lines   []Line
	Skipped []int // line numbers of malformed data lines
}

// Parse reads emoji-test.txt content. Malformed data lines are skipped and
// their line numbers recorded; only read errors are returned.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	group, subgroup := DefaultGroup, DefaultSubgroup

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())

		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, groupPrefix):
			group = strings.TrimSpace(strings.TrimPrefix(text, groupPrefix))
			continue
		case strings.HasPrefix(text, subgroupPrefix):
			subgroup = strings.TrimSpace(strings.TrimPrefix(text, subgroupPrefix))
			continue
		case strings.HasPrefix(text, "#"):
			continue
		}

		line, ok := parseDataLine(text)
		if !ok {
			f.Skipped = append(f.Skipped, lineNo)
			continue
		}
		line.Group = group
		line.Subgroup = subgroup
		line.LineNo = lineNo
		f.Lines = append(f.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	return f, nil
}

// parseDataLine parses "codepoints ; status # emoji E<version> name".
func parseDataLine(text string) (Line, bool) {
	data, comment, _ := strings.Cut(text, "#")

	fields, status, found := strings.Cut(data, ";")
	status = strings.TrimSpace(status)
	if !found || status == "" {
		return Line{}, false
	}

	hex := strings.Fields(fields)
	if len(hex) == 0 {
		return Line{}, false
	}
	cps := make([]rune, 0, len(hex))
	for _, h := range hex {
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return Line{}, false
		}
		cps = append(cps, rune(v))
	}

	line := Line{CodePoints: cps, Status: status, Emoji: string(cps)}

	words := strings.Fields(comment)
	if len(words) > 0 {
		line.Emoji = words[0]
		words = words[1:]
	}
	if len(words) > 0 && isVersion(words[0]) {
		line.Version = words[0]
		words = words[1:]
	}
	line.Name = strings.Join(words, " ")

	return line, true
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'E' {
		return false
	}
	_, err := strconv.ParseFloat(s[1:], 64)
	return err == nil
}

// GroupLookup maps a single-code-point character to its Unicode group.
type GroupLookup map[string]string

// Groups builds the lookup from the file. Each line is keyed by the character
// of its first code point only and the first occurrence wins, so multi-code-
// point sequences (skin tones, flags, ZWJ sequences, FE0F forms) have no key
// of their own.
func (f *File) Groups() GroupLookup {
	lookup := make(GroupLookup, len(f.Lines))
	for _, l := range f.Lines {
		key := string(l.CodePoints[0])
		if _, ok := lookup[key]; ok {
			continue
		}
		lookup[key] = l.Group
	}
	return lookup
}

// Group returns the group recorded for exactly this character.
func (g GroupLookup) Group(character string) (string, bool) {
	group, ok := g[character]
	return group, ok
}
