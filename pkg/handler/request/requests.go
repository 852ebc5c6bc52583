package request

// Extract biosynthetic genes from one antiSMASH result
type GeneExtractRequest struct {
	Input_File        string `json:"input_file"`          // antiSMASH JSON (or GenBank) result
	Output_File       string `json:"output_file"`         // TSV to write
	GlobalDomainIndex bool   `json:"global_domain_index"` // Index PFAM domains across all records instead of per record
}

// Summarise every region GenBank file of a directory
type RegionSummaryRequest struct {
	Input_Dir              string `json:"input_dir"`
	Regions_Out            string `json:"regions_out"`
	Cand_Clusters_Out      string `json:"cand_clusters_out"`
	Protoclusters_Out      string `json:"protoclusters_out"`
	Candidate_Cluster_Type string `json:"candidate_cluster_type"` // Feature type for candidate clusters, "" for the default
}
