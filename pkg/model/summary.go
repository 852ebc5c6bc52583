package model

import (
	"strings"
)

// SummarizeOptions tweaks how features are matched.
type SummarizeOptions struct {
	// TypeName overrides the feature type looked up for the kind,
	// e.g. "cand_cluster" for candidate clusters in GenBank output.
	TypeName string
}

// SummarizeFeatures computes one FeatureSummary per feature of kind in rec.
//
// Length uses the inclusive convention (end - start + 1) while gc_content is taken
// over the half-open slice Seq[start:end]. Both are kept as they are.
func SummarizeFeatures(rec *Record, kind FeatureKind) ([]FeatureSummary, error) {
	return SummarizeFeaturesWith(rec, kind, SummarizeOptions{})
}

func SummarizeFeaturesWith(rec *Record, kind FeatureKind, opts SummarizeOptions) ([]FeatureSummary, error) {

	nameKey, err := NumberingQualifier(kind)
	if err != nil {
		return nil, err
	}

	typeName := string(kind)
	if opts.TypeName != "" {
		typeName = opts.TypeName
	}

	var summaries []FeatureSummary

	for _, f := range rec.Features {
		if f.Type != typeName {
			continue
		}

		start, end := f.Location.Start, f.Location.End

		names, ok := f.Qualifiers[nameKey]
		if !ok || len(names) == 0 {
			return nil, &MissingQualifierError{RecordID: rec.ID, Kind: kind, Qualifier: nameKey}
		}

		product := NoProduct
		if products := f.Qualifiers.Values(QualProduct); len(products) > 0 {
			product = strings.Join(products, ";")
		}

		summaries = append(summaries, FeatureSummary{
			ContigID:     rec.ID,
			Start:        start,
			End:          end,
			Length:       end - start + 1,
			NumCDS:       countContainedCDS(rec, start, end),
			GCContent:    GCFraction(sliceSeq(rec.Seq, start, end)),
			Product:      product,
			OnContigEdge: f.Qualifiers.First(QualContigEdge, "False") == "True",
			Name:         names[0],
		})
	}

	return summaries, nil
}

// countContainedCDS counts CDS features with start <= f.start <= f.end <= end.
func countContainedCDS(rec *Record, start, end int) int {
	n := 0
	for _, f := range rec.Features {
		if !f.Is(KindCDS) {
			continue
		}
		if start <= f.Location.Start && f.Location.Start <= f.Location.End && f.Location.End <= end {
			n++
		}
	}
	return n
}

// sliceSeq is seq[start:end] with the bounds clamped to the sequence.
func sliceSeq(seq string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(seq) {
		end = len(seq)
	}
	if start >= end {
		return ""
	}
	return seq[start:end]
}

// Aggregator collects summaries of several kinds across records, in encounter order.
type Aggregator struct {
	opts      map[FeatureKind]SummarizeOptions
	summaries map[FeatureKind][]FeatureSummary
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		opts:      make(map[FeatureKind]SummarizeOptions),
		summaries: make(map[FeatureKind][]FeatureSummary),
	}
}

// SetTypeName makes the aggregator match kind against a different feature type string.
func (a *Aggregator) SetTypeName(kind FeatureKind, typeName string) {
	a.opts[kind] = SummarizeOptions{TypeName: typeName}
}

// Add summarises rec for every kind, in the given order.
func (a *Aggregator) Add(rec *Record, kinds ...FeatureKind) error {
	for _, kind := range kinds {
		s, err := SummarizeFeaturesWith(rec, kind, a.opts[kind])
		if err != nil {
			return err
		}
		a.summaries[kind] = append(a.summaries[kind], s...)
	}
	return nil
}

// Summaries returns what has been collected for kind so far.
func (a *Aggregator) Summaries(kind FeatureKind) []FeatureSummary {
	return a.summaries[kind]
}
