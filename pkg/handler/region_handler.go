package handler

import (
	"context"
	"fmt"

	"github.com/yumyai/bgctable/internal/util"
	"github.com/yumyai/bgctable/logger"
	mydb "github.com/yumyai/bgctable/pkg/db"
	"github.com/yumyai/bgctable/pkg/handler/request"
	"github.com/yumyai/bgctable/pkg/model"
	"github.com/yumyai/bgctable/pkg/parse"
	"github.com/yumyai/bgctable/pkg/render"
	"go.uber.org/zap"
)

const RegionToolName = "regionsummary"

type RegionSummaryResult struct {
	Run       mydb.Run
	Files     []string
	Records   int
	Summaries map[model.FeatureKind][]model.FeatureSummary
}

type summaryOutput struct {
	kind model.FeatureKind
	path string
}

// outputs pairs every summarised kind with its output path, in write order.
func outputs(req request.RegionSummaryRequest) []summaryOutput {
	return []summaryOutput{
		{model.KindRegion, req.Regions_Out},
		{model.KindCandidateCluster, req.Cand_Clusters_Out},
		{model.KindProtocluster, req.Protoclusters_Out},
	}
}

// SummarizeRegions reads every region GenBank file under the input directory and
// writes the region, candidate cluster and protocluster tables.
// All files are read and summarised before the first table is written.
func (rctx *RunContext) SummarizeRegions(ctx context.Context, req request.RegionSummaryRequest) (*RegionSummaryResult, error) {

	run := mydb.NewRun(RegionToolName, req.Input_Dir)
	log := logger.With(zap.String("run_id", run.ID.String()))

	files, err := util.ListFiles(req.Input_Dir, util.IsRegionGenBank)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", req.Input_Dir, err)
	}

	log.Info("Summarising region files", zap.String("dir", req.Input_Dir), zap.Int("files", len(files)))

	agg := model.NewAggregator()
	if req.Candidate_Cluster_Type != "" {
		agg.SetTypeName(model.KindCandidateCluster, req.Candidate_Cluster_Type)
	}

	var nrecords int

	for _, path := range files {
		records, err := parse.ReadGenBankFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		for _, rec := range records {
			if err := agg.Add(rec, model.SummaryKinds...); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}

		nrecords += len(records)
		log.Debug("Read region file", zap.String("file", path), zap.Int("records", len(records)))
	}

	result := &RegionSummaryResult{
		Run:       run,
		Files:     files,
		Records:   nrecords,
		Summaries: make(map[model.FeatureKind][]model.FeatureSummary),
	}

	// Stage all three tables first so a failed write leaves no table behind.
	staged := make([]*render.StagedTable, 0, len(model.SummaryKinds))

	for _, out := range outputs(req) {
		summaries := agg.Summaries(out.kind)
		result.Summaries[out.kind] = summaries

		table, err := render.StageSummaryTable(out.path, summaries)
		if err != nil {
			render.DiscardAll(staged)
			return nil, err
		}
		staged = append(staged, table)
	}

	if err := render.CommitAll(staged); err != nil {
		return nil, err
	}

	for _, out := range outputs(req) {
		log.Info("Wrote summary table",
			zap.String("kind", string(out.kind)),
			zap.String("output", out.path),
			zap.Int("rows", len(result.Summaries[out.kind])))
	}

	if rctx.Summary_DB != nil {
		if err := rctx.Summary_DB.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		for _, kind := range model.SummaryKinds {
			if err := rctx.Summary_DB.SaveFeatureSummaries(ctx, run.ID, kind, result.Summaries[kind]); err != nil {
				return nil, fmt.Errorf("save %s summaries: %w", kind, err)
			}
		}
		log.Debug("Exported summaries to SQLite")
	}

	return result, nil
}
