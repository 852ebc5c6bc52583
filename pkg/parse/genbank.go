// Minimal GenBank flat file reader, enough for antiSMASH region files.

package parse

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/yumyai/bgctable/pkg/model"
)

// Feature keys start in column 6 of the feature table.
const featureKeyColumn = 5

// 1..200, <1..>200, 5, 5^6, complement(join(1..10,20..30))
var (
	genbankRangeRegex  = regexp.MustCompile(`[<>]?(\d+)(?:(\.\.|\^)[<>]?(\d+))?`)
	genbankRemoteRegex = regexp.MustCompile(`[A-Za-z_][\w.]*:`)
)

// ParseGenBankLocation returns the outer extent of a GenBank location, 0-based and end-exclusive.
func ParseGenBankLocation(loc string) model.Location {
	loc = strings.Join(strings.Fields(loc), "")
	stripped := genbankRemoteRegex.ReplaceAllString(loc, "")

	matches := genbankRangeRegex.FindAllStringSubmatch(stripped, -1)
	if len(matches) == 0 {
		return model.Location{}
	}

	var out model.Location
	for i, m := range matches {
		a, _ := strconv.Atoi(m[1])

		var start, end int
		switch m[2] {
		case "..":
			b, _ := strconv.Atoi(m[3])
			start, end = a-1, b
		case "^":
			start, end = a, a
		default:
			start, end = a-1, a
		}

		if i == 0 || start < out.Start {
			out.Start = start
		}
		if i == 0 || end > out.End {
			out.End = end
		}
	}

	out.Strand = 1
	if strings.HasPrefix(loc, "complement(") {
		out.Strand = -1
	}

	return out
}

type genbankReader struct {
	path string
	line int

	records []*model.Record
	current *model.Record
	seq     strings.Builder

	section string // "", "FEATURES" or "ORIGIN"
	feature *model.Feature
	locRaw  string
	qualRaw string
}

// ReadGenBank reads every record of a GenBank stream. path is only used in errors.
func ReadGenBank(r io.Reader, path string) ([]*model.Record, error) {
	g := &genbankReader{path: path}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		g.line++
		if err := g.feed(strings.TrimRight(scanner.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Tolerate a missing final "//".
	if g.current != nil {
		g.endRecord()
	}

	return g.records, nil
}

// ReadGenBankFile opens path and reads it with ReadGenBank.
func ReadGenBankFile(path string) ([]*model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadGenBank(f, path)
}

func (g *genbankReader) errorf(msg string) error {
	return &SyntaxError{Path: g.path, Line: g.line, Msg: msg}
}

func (g *genbankReader) feed(line string) error {

	if strings.TrimSpace(line) == "" {
		return nil
	}

	if strings.HasPrefix(line, "//") {
		if g.current == nil {
			return g.errorf("record terminator without LOCUS")
		}
		g.endRecord()
		return nil
	}

	// Top level keyword
	if line[0] != ' ' {
		keyword, value := splitKeyword(line)

		if keyword == "LOCUS" {
			if g.current != nil {
				g.endRecord()
			}
			fields := strings.Fields(value)
			g.current = &model.Record{}
			if len(fields) > 0 {
				g.current.ID = fields[0]
			}
			return nil
		}

		if g.current == nil {
			return g.errorf(keyword + " line before LOCUS")
		}

		g.closeFeature()

		switch keyword {
		case "ACCESSION", "VERSION":
			if fields := strings.Fields(value); len(fields) > 0 {
				g.current.ID = fields[0]
			}
			g.section = ""
		case "FEATURES":
			g.section = "FEATURES"
		case "ORIGIN":
			g.section = "ORIGIN"
		default:
			g.section = ""
		}
		return nil
	}

	if g.current == nil {
		return g.errorf("content before LOCUS")
	}

	switch g.section {
	case "FEATURES":
		return g.feedFeature(line)
	case "ORIGIN":
		for _, r := range line {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				g.seq.WriteRune(r)
			}
		}
	}
	// Continuation of header keywords (DEFINITION, SOURCE, ...) is ignored.
	return nil
}

func (g *genbankReader) feedFeature(line string) error {

	if len(line) > featureKeyColumn && line[featureKeyColumn] != ' ' && strings.TrimSpace(line[:featureKeyColumn]) == "" {
		g.closeFeature()

		key, loc := splitKeyword(strings.TrimLeft(line, " "))
		g.feature = &model.Feature{Type: key, Qualifiers: model.Qualifiers{}}
		g.locRaw = loc
		return nil
	}

	if g.feature == nil {
		return g.errorf("feature qualifier without a feature key")
	}

	text := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(text, "/") && g.qualifierComplete():
		g.flushQualifier()
		g.qualRaw = text[1:]
	case g.qualRaw != "":
		sep := " "
		if strings.HasPrefix(g.qualRaw, "translation=") {
			sep = ""
		}
		g.qualRaw += sep + text
	default:
		g.locRaw += text
	}
	return nil
}

// qualifierComplete is false while a quoted value is still open.
func (g *genbankReader) qualifierComplete() bool {
	if g.qualRaw == "" {
		return true
	}
	_, value, hasValue := strings.Cut(g.qualRaw, "=")
	if !hasValue || !strings.HasPrefix(value, "\"") {
		return true
	}
	return strings.Count(value, "\"")%2 == 0
}

func (g *genbankReader) flushQualifier() {
	if g.qualRaw == "" {
		return
	}
	key, value, _ := strings.Cut(g.qualRaw, "=")
	if strings.HasPrefix(value, "\"") {
		value = strings.TrimPrefix(value, "\"")
		value = strings.TrimSuffix(value, "\"")
		value = strings.ReplaceAll(value, "\"\"", "\"")
	}
	g.feature.Qualifiers[key] = append(g.feature.Qualifiers[key], value)
	g.qualRaw = ""
}

func (g *genbankReader) closeFeature() {
	if g.feature == nil {
		return
	}
	g.flushQualifier()
	g.feature.Location = ParseGenBankLocation(g.locRaw)
	g.current.Features = append(g.current.Features, g.feature)
	g.feature = nil
	g.locRaw = ""
}

func (g *genbankReader) endRecord() {
	g.closeFeature()
	g.current.Seq = strings.ToUpper(g.seq.String())
	g.records = append(g.records, g.current)

	g.current = nil
	g.seq.Reset()
	g.section = ""
}

// splitKeyword splits "KEY   rest of line" into KEY and the trimmed rest.
func splitKeyword(line string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.TrimSpace(fields[1])
}
