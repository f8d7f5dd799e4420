package site

import (
	"log/slog"
	"os"

	"github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/logfields"
)

// stagingDir is the sibling directory an atomic build writes into.
func stagingDir(outputDir string) string { return outputDir + "_stage" }

// backupDir holds the previous output while the staging tree is promoted.
func backupDir(outputDir string) string { return outputDir + ".prev" }

// resetDir removes dir and everything below it, then recreates it empty.
func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove directory").
			Fatal().WithContext("path", dir).Build()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create directory").
			Fatal().WithContext("path", dir).Build()
	}
	return nil
}

// beginStaging creates an empty staging directory next to the output.
// Leftovers of an interrupted earlier build are discarded.
func (b *Builder) beginStaging() error {
	stage := stagingDir(b.opts.OutputDir)
	if err := resetDir(stage); err != nil {
		return err
	}
	b.stageDir = stage
	slog.Debug("Initialized staging directory", "staging", stage, "final", b.opts.OutputDir)
	return nil
}

// finalizeStaging promotes the staging directory to the output location:
//  1. Move the existing output (if any) to <output>.prev.
//  2. Rename staging to output.
//  3. Remove the backup.
func (b *Builder) finalizeStaging() error {
	if b.stageDir == "" {
		return errors.InternalError("no staging directory initialized").Build()
	}
	if _, err := os.Stat(b.stageDir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "staging directory missing").
			Fatal().WithContext("path", b.stageDir).Build()
	}

	prev := backupDir(b.opts.OutputDir)
	if err := os.RemoveAll(prev); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove previous backup").
			Fatal().WithContext("path", prev).Build()
	}
	if _, err := os.Stat(b.opts.OutputDir); err == nil {
		if err := b.rename(b.opts.OutputDir, prev); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to back up existing output").
				Fatal().WithContext("path", b.opts.OutputDir).Build()
		}
	}
	if err := b.rename(b.stageDir, b.opts.OutputDir); err != nil {
		b.restoreBackup(prev)
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to promote staging directory").
			Fatal().WithContext("path", b.stageDir).Build()
	}
	b.stageDir = ""
	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", logfields.Path(prev), logfields.Error(err))
	}
	slog.Debug("Promoted staging directory", logfields.Path(b.opts.OutputDir))
	return nil
}

// restoreBackup moves <output>.prev back into place after a failed promotion.
func (b *Builder) restoreBackup(prev string) {
	if _, err := os.Stat(prev); err != nil {
		return
	}
	if _, err := os.Stat(b.opts.OutputDir); err == nil {
		slog.Warn("Output exists after failed promotion; previous site left as backup", logfields.Path(prev))
		return
	}
	if err := b.rename(prev, b.opts.OutputDir); err != nil {
		slog.Error("Failed to restore previous output", logfields.Path(prev), logfields.Error(err))
		return
	}
	slog.Warn("Restored previous output after failed promotion", logfields.Path(b.opts.OutputDir))
}

// abortStaging removes the staging directory after a failed build so the
// previous output stays untouched and no temp tree is left behind.
func (b *Builder) abortStaging() {
	if b.stageDir == "" {
		return
	}
	dir := b.stageDir
	b.stageDir = ""
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("Failed to remove staging directory after abort", "staging", dir, logfields.Error(err))
	} else {
		slog.Debug("Removed staging directory after abort", "staging", dir)
	}
}
