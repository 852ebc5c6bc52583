package model

import (
	"strings"
)

// IsBiosynthetic reports whether a lowercased gene_kind belongs in the gene table.
func IsBiosynthetic(geneKind string) bool {
	return biosyntheticRoles[geneKind]
}

// clusterCategory joins the products of a region feature.
func clusterCategory(region *Feature) string {
	if !region.Qualifiers.Has(QualProduct) {
		return UnknownCategory
	}
	return strings.Join(region.Qualifiers.Values(QualProduct), ", ")
}

// ClassifyGenes returns the biosynthetic genes of one record.
//
// The category of each entry is the product of the last region seen before its CDS.
// A record contributes nothing unless, after the whole scan, a non-empty category
// was seen and at least one gene qualified.
func ClassifyGenes(rec *Record, idx *DomainIndex) []GeneEntry {

	var category string
	var genes []GeneEntry

	for _, f := range rec.Features {
		switch {
		case f.Is(KindRegion):
			category = clusterCategory(f)

		case f.Is(KindCDS):
			geneID := f.Qualifiers.First(QualID, UnknownValue)
			geneKind := strings.ToLower(f.Qualifiers.First(QualGeneKind, UnknownGeneKind))

			if !IsBiosynthetic(geneKind) {
				continue
			}

			genes = append(genes, GeneEntry{
				GeneID:          geneID,
				GeneKind:        geneKind,
				ClusterCategory: category,
				PfamDomains:     strings.Join(idx.Domains(geneID), ";"),
			})
		}
	}

	if category == "" || len(genes) == 0 {
		return nil
	}

	return genes
}
