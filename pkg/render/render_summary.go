package render

import (
	"math"
	"strconv"

	"github.com/yumyai/bgctable/pkg/model"
)

var SummaryHeader = []string{
	"contig_id", "start", "end", "length", "num_cds", "gc_content", "product", "on_contig_edge", "name",
}

type SummaryRow model.FeatureSummary

func (s SummaryRow) Fields() []string {
	return []string{
		s.ContigID,
		strconv.Itoa(s.Start),
		strconv.Itoa(s.End),
		strconv.Itoa(s.Length),
		strconv.Itoa(s.NumCDS),
		FormatFloat(s.GCContent),
		s.Product,
		FormatBool(s.OnContigEdge),
		s.Name,
	}
}

func SummaryRows(summaries []model.FeatureSummary) []SummaryRow {
	rows := make([]SummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = SummaryRow(s)
	}
	return rows
}

// StageSummaryTable writes one kind's summaries as CSV into a staged file for path.
func StageSummaryTable(path string, summaries []model.FeatureSummary) (*StagedTable, error) {
	return StageTableFile(path, SummaryHeader, SummaryRows(summaries), CSV)
}

// FormatFloat prints the shortest round-trip form, keeping ".0" on whole numbers (1.0, 0.0).
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}

// FormatBool prints True / False.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
