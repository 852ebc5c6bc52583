package render

import (
	"github.com/yumyai/bgctable/pkg/model"
)

var GeneHeader = []string{"gene_id", "gene_kind", "cluster_category", "pfam_domains"}

type GeneRow model.GeneEntry

func (g GeneRow) Fields() []string {
	return []string{g.GeneID, g.GeneKind, g.ClusterCategory, g.PfamDomains}
}

func GeneRows(entries []model.GeneEntry) []GeneRow {
	rows := make([]GeneRow, len(entries))
	for i, e := range entries {
		rows[i] = GeneRow(e)
	}
	return rows
}

// WriteGeneTable writes the biosynthetic gene table as TSV.
func WriteGeneTable(path string, entries []model.GeneEntry) error {
	return WriteTableFile(path, GeneHeader, GeneRows(entries), TSV)
}
