package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/m2de/getapi-site/internal/logfields"
	"github.com/m2de/getapi-site/internal/metrics"
)

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageReset           StageName = "reset"
	StageInitRenderer    StageName = "init_renderer"
	StageLoad            StageName = "load"
	StageRenderIndex     StageName = "render_index"
	StageRenderProviders StageName = "render_providers"
	StageRender404       StageName = "render_404"
	StageCopyAssets      StageName = "copy_assets"
	StageSitemap         StageName = "sitemap"
	StageRobots          StageName = "robots"
	StageVerifyLinks     StageName = "verify_links"
	StagePromote         StageName = "promote"
	StageSummarize       StageName = "summarize"
)

// StageErrorKind classifies how a stage failed.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError wraps the cause of a failed stage with the stage name.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// Stage is one step of the build operating on shared build state.
type Stage func(ctx context.Context, bs *buildState) error

type stageDef struct {
	name StageName
	fn   Stage
}

// runStages executes stages in order. Cancellation is only observed between
// stages; a stage is never interrupted once started.
func runStages(ctx context.Context, bs *buildState, stages []stageDef, rec metrics.Recorder) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			rec.IncStageResult(string(st.name), metrics.ResultCanceled)
			return newCanceledStageError(st.name, ctx.Err())
		default:
		}
		t0 := time.Now()
		err := st.fn(ctx, bs)
		dur := time.Since(t0)
		bs.report.StageDurations[string(st.name)] = dur
		rec.ObserveStageDuration(string(st.name), dur)
		if err != nil {
			rec.IncStageResult(string(st.name), metrics.ResultFatal)
			var se *StageError
			if errors.As(err, &se) {
				return se
			}
			return newFatalStageError(st.name, err)
		}
		rec.IncStageResult(string(st.name), metrics.ResultSuccess)
		slog.Debug("Stage complete",
			logfields.BuildID(bs.report.BuildID),
			logfields.Stage(string(st.name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
