package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/anujrohit1/pubfilter/internal/domain"
	"github.com/anujrohit1/pubfilter/internal/ports"
	"github.com/anujrohit1/pubfilter/internal/usecase/filter"
	"github.com/anujrohit1/pubfilter/internal/usecase/report"
)

// RunPipeline loads a document, keeps its public entries, submits them and
// reports the valid keys of the answer. Each stage runs only if the previous
// one succeeded.
type RunPipeline struct {
	documents ports.DocumentLoader
	submitter ports.PayloadSubmitter
	log       *slog.Logger
}

func NewRunPipeline(dl ports.DocumentLoader, ps ports.PayloadSubmitter, log *slog.Logger) *RunPipeline {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &RunPipeline{
		documents: dl,
		submitter: ps,
		log:       log,
	}
}

func (uc *RunPipeline) Execute(ctx context.Context, sourcePath string, targetURL string) (domain.Report, error) {
	doc, err := uc.documents.LoadDocument(sourcePath)
	if err != nil {
		return domain.Report{}, uc.fail(err)
	}
	uc.log.Info("pipeline.loaded", "path", sourcePath, "shape", doc.Shape, "entries", doc.Len())

	public, err := filter.Public(doc)
	if err != nil {
		return domain.Report{}, uc.fail(err)
	}
	uc.log.Info("pipeline.filtered", "kept", public.Len(), "dropped", doc.Len()-public.Len())

	if err := ctx.Err(); err != nil {
		return domain.Report{}, uc.fail(&domain.OpError{
			Op:   "pipeline.submit",
			Kind: domain.KindRequestFailed,
			Path: targetURL,
			Err:  err,
		})
	}

	resp, err := uc.submitter.Submit(ctx, targetURL, public)
	if err != nil {
		uc.log.Debug("pipeline.response", "status", resp.StatusCode, "body_bytes", len(resp.Body))
		return domain.Report{}, uc.fail(err)
	}
	uc.log.Info("pipeline.submitted",
		"url", targetURL,
		"status", resp.StatusCode,
		"latency_ms", resp.Latency.Milliseconds(),
		"bytes", len(resp.Body),
	)

	rep, err := report.QualifyingKeys(resp.Body)
	if err != nil {
		return domain.Report{}, uc.fail(err)
	}
	uc.log.Info("pipeline.reported", "shape", rep.Shape, "keys", len(rep.Keys))
	return rep, nil
}

func (uc *RunPipeline) fail(err error) error {
	attrs := []any{"kind", domain.KindOf(err), "err", err.Error(), "cause", domain.Cause(err).Error()}
	if domain.IsKind(err, domain.KindRequestFailed) {
		attrs = append(attrs, "class", domain.ClassifyRunError(err))
	}
	uc.log.Error("pipeline.failed", attrs...)
	return err
}
