package handler

import (
	"context"
	"fmt"

	"github.com/yumyai/bgctable/logger"
	mydb "github.com/yumyai/bgctable/pkg/db"
	"github.com/yumyai/bgctable/pkg/handler/request"
	"github.com/yumyai/bgctable/pkg/model"
	"github.com/yumyai/bgctable/pkg/parse"
	"github.com/yumyai/bgctable/pkg/render"
	"go.uber.org/zap"
)

const GeneToolName = "biosyngenes"

type GeneExtractResult struct {
	Run     mydb.Run
	Records int
	Entries []model.GeneEntry
}

// ExtractBiosyntheticGenes loads the input, classifies its genes and writes the TSV.
// Nothing is written when loading fails.
func (rctx *RunContext) ExtractBiosyntheticGenes(ctx context.Context, req request.GeneExtractRequest) (*GeneExtractResult, error) {

	run := mydb.NewRun(GeneToolName, req.Input_File)
	log := logger.With(zap.String("run_id", run.ID.String()))

	log.Info("Loading annotations",
		zap.String("input", req.Input_File),
		zap.Stringer("format", parse.LoadFormat(req.Input_File)))

	records, err := parse.Load(req.Input_File)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", req.Input_File, err)
	}

	var idx *model.DomainIndex
	if req.GlobalDomainIndex {
		idx = model.IndexAllDomains(records)
		log.Debug("Indexed PFAM domains across records", zap.Int("genes", idx.Len()))
	}

	entries := make([]model.GeneEntry, 0, 64)

	for _, rec := range records {
		recIdx := idx
		if recIdx == nil {
			recIdx = model.IndexDomains(rec.Features)
		}
		genes := model.ClassifyGenes(rec, recIdx)
		log.Debug("Classified record", zap.String("record", rec.ID), zap.Int("genes", len(genes)))
		entries = append(entries, genes...)
	}

	if err := render.WriteGeneTable(req.Output_File, entries); err != nil {
		return nil, err
	}

	log.Info("Wrote gene table",
		zap.String("output", req.Output_File),
		zap.Int("records", len(records)),
		zap.Int("genes", len(entries)))

	if rctx.Summary_DB != nil {
		if err := rctx.Summary_DB.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		if err := rctx.Summary_DB.SaveGeneEntries(ctx, run.ID, entries); err != nil {
			return nil, fmt.Errorf("save genes: %w", err)
		}
		log.Debug("Exported genes to SQLite")
	}

	return &GeneExtractResult{
		Run:     run,
		Records: len(records),
		Entries: entries,
	}, nil
}
