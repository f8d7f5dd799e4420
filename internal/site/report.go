package site

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// Report summarizes a finished (or failed) build.
type Report struct {
	BuildID        string
	OutputDir      string
	Start          time.Time
	End            time.Time
	Files          []string // written files relative to the output root, slash separated
	ProviderPages  int
	StageDurations map[string]time.Duration
}

func newReport(buildID, outputDir string) *Report {
	return &Report{
		BuildID:        buildID,
		OutputDir:      outputDir,
		Start:          time.Now(),
		StageDurations: make(map[string]time.Duration),
	}
}

// Duration is the wall time of the build.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// SortedFiles returns the written files in lexicographic order.
func (r *Report) SortedFiles() []string {
	files := slices.Clone(r.Files)
	slices.Sort(files)
	return files
}

// WriteSummary prints the file listing and provider page count.
func (r *Report) WriteSummary(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Built %d files in %s/:\n", len(r.Files), strings.TrimRight(r.OutputDir, "/"))
	for _, f := range r.SortedFiles() {
		fmt.Fprintf(&sb, "  %s\n", f)
	}
	fmt.Fprintf(&sb, "\n%d provider pages generated.\n", r.ProviderPages)
	_, err := io.WriteString(w, sb.String())
	return err
}
