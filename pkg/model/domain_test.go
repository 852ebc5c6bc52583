package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pfam(label, xref string) *Feature {
	q := Qualifiers{}
	if label != "" {
		q[QualLabel] = []string{label}
	}
	if xref != "" {
		q[QualDBXref] = []string{xref}
	}
	return &Feature{Type: string(KindDomain), Qualifiers: q}
}

func TestIndexDomainsKeepsOrder(t *testing.T) {
	features := []*Feature{
		pfam("g1", "PF00109"),
		pfam("g2", "PF00550"),
		pfam("g1", "PF02801"),
		{Type: string(KindCDS), Qualifiers: Qualifiers{QualID: {"g1"}}},
		pfam("g1", "PF00109"),
	}

	idx := IndexDomains(features)

	assert.Equal(t, 2, idx.Len())
	// No sorting and no deduplication.
	assert.Equal(t, []string{"PF00109", "PF02801", "PF00109"}, idx.Domains("g1"))
	assert.Equal(t, []string{"PF00550"}, idx.Domains("g2"))
	assert.Nil(t, idx.Domains("g3"))
}

func TestIndexDomainsMissingQualifiers(t *testing.T) {
	features := []*Feature{
		pfam("", "PF00001"),
		pfam("g1", ""),
		{Type: string(KindDomain), Qualifiers: Qualifiers{QualLabel: {}}},
	}

	idx := IndexDomains(features)

	assert.Equal(t, []string{"PF00001", UnknownValue}, idx.Domains(UnknownValue))
	assert.Equal(t, []string{UnknownValue}, idx.Domains("g1"))
}

func TestIndexAllDomainsSpansRecords(t *testing.T) {
	records := []*Record{
		{ID: "r1", Features: []*Feature{pfam("g1", "PF1")}},
		{ID: "r2", Features: []*Feature{pfam("g1", "PF2"), pfam("g2", "PF3")}},
	}

	idx := IndexAllDomains(records)

	assert.Equal(t, []string{"PF1", "PF2"}, idx.Domains("g1"))
	assert.Equal(t, []string{"PF3"}, idx.Domains("g2"))
}

func TestNilDomainIndex(t *testing.T) {
	var idx *DomainIndex
	assert.Nil(t, idx.Domains("anything"))
}
