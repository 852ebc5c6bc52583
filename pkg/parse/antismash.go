// Reader for antiSMASH JSON results

package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/yumyai/bgctable/pkg/model"
)

type antismashResult struct {
	Records []antismashRecord `json:"records"`
}

type antismashRecord struct {
	ID  string `json:"id"`
	Seq struct {
		Data string `json:"data"`
	} `json:"seq"`
	Features []antismashFeature `json:"features"`
}

type antismashFeature struct {
	Type       string                     `json:"type"`
	Location   string                     `json:"location"`
	Qualifiers map[string]qualifierValues `json:"qualifiers"`
}

// qualifierValues accepts either a list or a single scalar.
type qualifierValues []string

func (q *qualifierValues) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*q = nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, scalarString(item))
		}
		*q = values
	default:
		*q = []string{scalarString(v)}
	}
	return nil
}

func scalarString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case bool:
		// JSON spelling, so a boolean never equals the "True" string qualifier.
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		b, _ := json.Marshal(s)
		return string(b)
	}
}

// [0:1500](+), [<10:>200](-), join{[0:10](+), [20:30](+)}
var antismashLocationRegex = regexp.MustCompile(`\[<?(\d+):>?(\d+)\](?:\(([+\-.?])\))?`)

// ParseAntismashLocation returns the outer extent of an antiSMASH location string.
// Unparseable locations yield the zero Location.
func ParseAntismashLocation(loc string) model.Location {
	matches := antismashLocationRegex.FindAllStringSubmatch(loc, -1)
	if len(matches) == 0 {
		return model.Location{}
	}

	var out model.Location
	for i, m := range matches {
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		if i == 0 || start < out.Start {
			out.Start = start
		}
		if i == 0 || end > out.End {
			out.End = end
		}
	}

	switch matches[0][3] {
	case "+":
		out.Strand = 1
	case "-":
		out.Strand = -1
	}

	return out
}

// ReadAntismashJSON decodes an antiSMASH JSON document into records.
func ReadAntismashJSON(r io.Reader) ([]*model.Record, error) {

	var result antismashResult
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}

	records := make([]*model.Record, 0, len(result.Records))

	for _, ar := range result.Records {
		rec := &model.Record{
			ID:       ar.ID,
			Seq:      strings.ToUpper(ar.Seq.Data),
			Features: make([]*model.Feature, 0, len(ar.Features)),
		}

		for _, af := range ar.Features {
			q := make(model.Qualifiers, len(af.Qualifiers))
			for k, v := range af.Qualifiers {
				q[k] = []string(v)
			}
			rec.Features = append(rec.Features, &model.Feature{
				Type:       af.Type,
				Location:   ParseAntismashLocation(af.Location),
				Qualifiers: q,
			})
		}

		records = append(records, rec)
	}

	return records, nil
}

// ReadAntismashJSONFile opens path and decodes it with ReadAntismashJSON.
func ReadAntismashJSONFile(path string) ([]*model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadAntismashJSON(f)
	if err != nil {
		return nil, &SyntaxError{Path: path, Msg: fmt.Sprintf("invalid antiSMASH JSON: %v", err)}
	}
	return records, nil
}
