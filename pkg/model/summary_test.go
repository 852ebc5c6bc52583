package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(typ string, start, end int, q Qualifiers) *Feature {
	if q == nil {
		q = Qualifiers{}
	}
	return &Feature{Type: typ, Location: Location{Start: start, End: end}, Qualifiers: q}
}

func TestSummarizeFeaturesRegion(t *testing.T) {
	seq := strings.Repeat("A", 10) + strings.Repeat("GC", 20) + strings.Repeat("T", 10)
	rec := &Record{
		ID:  "contig_7",
		Seq: seq,
		Features: []*Feature{
			span("region", 10, 50, Qualifiers{
				QualRegionNum:  {"1"},
				QualProduct:    {"NRPS", "terpene"},
				QualContigEdge: {"True"},
			}),
			span("CDS", 12, 40, nil),
			span("CDS", 5, 20, nil),
			span("CDS", 45, 51, nil),
			span("CDS", 10, 50, nil),
		},
	}

	got, err := SummarizeFeatures(rec, KindRegion)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, FeatureSummary{
		ContigID:     "contig_7",
		Start:        10,
		End:          50,
		Length:       41,
		NumCDS:       2,
		GCContent:    1.0,
		Product:      "NRPS;terpene",
		OnContigEdge: true,
		Name:         "1",
	}, got[0])
}

func TestSummarizeFeaturesSingleContainedCDS(t *testing.T) {
	rec := &Record{
		ID:  "c",
		Seq: strings.Repeat("A", 60),
		Features: []*Feature{
			span("region", 10, 50, Qualifiers{QualRegionNum: {"1"}}),
			span("CDS", 12, 40, nil),
		},
	}

	got, err := SummarizeFeatures(rec, KindRegion)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].NumCDS)
	assert.Equal(t, 41, got[0].Length)
	assert.Equal(t, 0.0, got[0].GCContent)
	assert.Equal(t, NoProduct, got[0].Product)
	assert.False(t, got[0].OnContigEdge)
}

func TestSummarizeFeaturesContigEdge(t *testing.T) {
	for _, value := range []string{"True", "true", "1", "TRUE", "False", ""} {
		t.Run("value="+value, func(t *testing.T) {
			rec := &Record{Features: []*Feature{
				span("protocluster", 0, 4, Qualifiers{QualProtoNum: {"2"}, QualContigEdge: {value}}),
			}}
			got, err := SummarizeFeatures(rec, KindProtocluster)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, value == "True", got[0].OnContigEdge)
		})
	}
}

func TestSummarizeFeaturesMissingNumber(t *testing.T) {
	rec := &Record{ID: "c9", Features: []*Feature{span("candidate_cluster", 0, 4, nil)}}

	_, err := SummarizeFeatures(rec, KindCandidateCluster)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingQualifier))
	var mqe *MissingQualifierError
	require.True(t, errors.As(err, &mqe))
	assert.Equal(t, QualCandNum, mqe.Qualifier)
	assert.Equal(t, "c9", mqe.RecordID)
}

func TestSummarizeFeaturesUnsupportedKind(t *testing.T) {
	_, err := SummarizeFeatures(&Record{}, KindCDS)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func TestSummarizeFeaturesTypeNameOverride(t *testing.T) {
	rec := &Record{Features: []*Feature{
		span("cand_cluster", 0, 4, Qualifiers{QualCandNum: {"1"}}),
	}}

	plain, err := SummarizeFeatures(rec, KindCandidateCluster)
	require.NoError(t, err)
	assert.Empty(t, plain)

	renamed, err := SummarizeFeaturesWith(rec, KindCandidateCluster, SummarizeOptions{TypeName: "cand_cluster"})
	require.NoError(t, err)
	require.Len(t, renamed, 1)
	assert.Equal(t, "1", renamed[0].Name)
}

func TestAggregatorOrder(t *testing.T) {
	agg := NewAggregator()
	recs := []*Record{
		{ID: "a", Seq: "GGGG", Features: []*Feature{
			span("region", 0, 2, Qualifiers{QualRegionNum: {"1"}}),
			span("region", 2, 4, Qualifiers{QualRegionNum: {"2"}}),
			span("protocluster", 0, 4, Qualifiers{QualProtoNum: {"1"}}),
		}},
		{ID: "b", Seq: "ATAT", Features: []*Feature{
			span("region", 0, 4, Qualifiers{QualRegionNum: {"1"}}),
		}},
	}

	for _, rec := range recs {
		require.NoError(t, agg.Add(rec, SummaryKinds...))
	}

	regions := agg.Summaries(KindRegion)
	require.Len(t, regions, 3)
	assert.Equal(t, []string{"a", "a", "b"}, []string{regions[0].ContigID, regions[1].ContigID, regions[2].ContigID})
	assert.Equal(t, "2", regions[1].Name)
	assert.Len(t, agg.Summaries(KindProtocluster), 1)
	assert.Empty(t, agg.Summaries(KindCandidateCluster))
}

func TestSliceSeqClamps(t *testing.T) {
	assert.Equal(t, "CG", sliceSeq("ACGT", 1, 3))
	assert.Equal(t, "GT", sliceSeq("ACGT", 2, 10))
	assert.Equal(t, "", sliceSeq("ACGT", 3, 1))
	assert.Equal(t, "", sliceSeq("", 0, 5))
}
