package model

// Qualifiers maps a qualifier name to its ordered values.
type Qualifiers map[string][]string

// First returns the first value of key, or def when the key is absent or empty.
func (q Qualifiers) First(key, def string) string {
	values, ok := q[key]
	if !ok || len(values) == 0 {
		return def
	}
	return values[0]
}

// Values returns every value of key (nil when absent).
func (q Qualifiers) Values(key string) []string {
	return q[key]
}

// Has reports whether key is present at all.
func (q Qualifiers) Has(key string) bool {
	_, ok := q[key]
	return ok
}

// Location is a 0-based, end-exclusive span on a record.
type Location struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Strand int `json:"strand"` // 1, -1 or 0 when unknown
}

type Feature struct {
	Type       string     `json:"type"`
	Location   Location   `json:"location"`
	Qualifiers Qualifiers `json:"qualifiers"`
}

// Is reports whether the feature has the given kind.
func (f *Feature) Is(kind FeatureKind) bool {
	return f.Type == string(kind)
}

// Record is one annotated sequence (a contig, or an antiSMASH region file entry).
type Record struct {
	ID       string     `json:"id"`
	Seq      string     `json:"seq"`
	Features []*Feature `json:"features"`
}

// GeneEntry is one row of the biosynthetic gene table.
type GeneEntry struct {
	GeneID          string `json:"gene_id"`
	GeneKind        string `json:"gene_kind"`
	ClusterCategory string `json:"cluster_category"`
	PfamDomains     string `json:"pfam_domains"`
}

// FeatureSummary is one row of a region / candidate_cluster / protocluster table.
type FeatureSummary struct {
	ContigID     string  `json:"contig_id"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Length       int     `json:"length"`
	NumCDS       int     `json:"num_cds"`
	GCContent    float64 `json:"gc_content"`
	Product      string  `json:"product"`
	OnContigEdge bool    `json:"on_contig_edge"`
	Name         string  `json:"name"`
}
