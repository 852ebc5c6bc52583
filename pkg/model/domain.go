package model

// DomainIndex maps a gene id to the PFAM ids annotated on it, in encounter order.
type DomainIndex struct {
	domains map[string][]string
}

func NewDomainIndex() *DomainIndex {
	return &DomainIndex{
		domains: make(map[string][]string),
	}
}

// Add appends domainID to the list of geneID, creating the list on first use.
func (idx *DomainIndex) Add(geneID, domainID string) {
	idx.domains[geneID] = append(idx.domains[geneID], domainID)
}

// Domains returns the domain ids of geneID, nil if none were indexed.
func (idx *DomainIndex) Domains(geneID string) []string {
	if idx == nil {
		return nil
	}
	return idx.domains[geneID]
}

// Len is the number of distinct genes indexed.
func (idx *DomainIndex) Len() int {
	return len(idx.domains)
}

// AddFeatures indexes every domain feature in features.
func (idx *DomainIndex) AddFeatures(features []*Feature) {
	for _, f := range features {
		if !f.Is(KindDomain) {
			continue
		}
		geneID := f.Qualifiers.First(QualLabel, UnknownValue)
		pfamID := f.Qualifiers.First(QualDBXref, UnknownValue)
		idx.Add(geneID, pfamID)
	}
}

// AddRecord indexes the domain features of one record.
func (idx *DomainIndex) AddRecord(rec *Record) {
	idx.AddFeatures(rec.Features)
}

// IndexDomains builds the index for a single feature list.
func IndexDomains(features []*Feature) *DomainIndex {
	idx := NewDomainIndex()
	idx.AddFeatures(features)
	return idx
}

// IndexAllDomains builds one index across every record.
func IndexAllDomains(records []*Record) *DomainIndex {
	idx := NewDomainIndex()
	for _, rec := range records {
		idx.AddRecord(rec)
	}
	return idx
}
