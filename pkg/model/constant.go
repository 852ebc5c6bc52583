package model

import (
	"errors"
	"fmt"
)

// FeatureKind is the feature type string as it appears in antiSMASH output.
type FeatureKind string

const (
	KindRegion           FeatureKind = "region"
	KindCandidateCluster FeatureKind = "candidate_cluster"
	KindProtocluster     FeatureKind = "protocluster"
	KindCDS              FeatureKind = "CDS"
	KindDomain           FeatureKind = "PFAM_domain"
)

// Kinds summarised by the region pipeline, in output order.
var SummaryKinds = []FeatureKind{KindRegion, KindCandidateCluster, KindProtocluster}

// Qualifier names
const (
	QualLabel       = "label"
	QualDBXref      = "db_xref"
	QualID          = "ID"
	QualGeneKind    = "gene_kind"
	QualProduct     = "product"
	QualContigEdge  = "contig_edge"
	QualRegionNum   = "region_number"
	QualCandNum     = "candidate_cluster_number"
	QualProtoNum    = "protocluster_number"
	UnknownValue    = "<unknown>"
	UnknownGeneKind = "Unknown"
	UnknownCategory = "Unknown"
	NoProduct       = "None"
)

// Gene roles that make a CDS part of the biosynthetic gene table.
var biosyntheticRoles = map[string]bool{
	"biosynthetic":            true,
	"biosynthetic-additional": true,
}

var (
	ErrMissingQualifier = errors.New("missing required qualifier")
	ErrUnsupportedKind  = errors.New("unsupported feature kind")
)

// MissingQualifierError reports a summarised feature without its numbering qualifier.
type MissingQualifierError struct {
	RecordID  string
	Kind      FeatureKind
	Qualifier string
}

func (e *MissingQualifierError) Error() string {
	return fmt.Sprintf("record %s: %s feature has no %q qualifier", e.RecordID, e.Kind, e.Qualifier)
}

func (e *MissingQualifierError) Unwrap() error {
	return ErrMissingQualifier
}

// NumberingQualifier returns the qualifier that names a feature of the given kind.
func NumberingQualifier(kind FeatureKind) (string, error) {
	switch kind {
	case KindRegion:
		return QualRegionNum, nil
	case KindCandidateCluster:
		return QualCandNum, nil
	case KindProtocluster:
		return QualProtoNum, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}
