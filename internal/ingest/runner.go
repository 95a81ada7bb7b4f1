package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// Runner drives one ingest pass: it scans a directory for the xlsx
// exports, runs the roster and site labor readers first, then
// dispatches the rest through the registry. Each reader is a pure
// synchronous transformation of the in-memory team/site graph.
//
// Now is the run's reference time; the temporal cutoff used by every
// reader derives from it rather than from the wall clock, so a run is
// reproducible for any chosen date.
type Runner struct {
	Team *models.Team
	Site *models.Site
	Now  time.Time

	// LaborCompany and LaborDivision stamp site labor code rows, whose
	// export carries no company column.
	LaborCompany  string
	LaborDivision string

	lg *zap.Logger
}

func NewRunner(team *models.Team, site *models.Site, now time.Time, lg *zap.Logger) *Runner {
	return &Runner{Team: team, Site: site, Now: dateOnly(now), lg: lg}
}

// Run processes every recognized export file in dir. A file that
// cannot be read or that violates its column contract aborts that
// reader only; the rest of the pipeline continues on the unchanged
// graph.
func (r *Runner) Run(dir string) error {
	if err := validateRegistry(); err != nil {
		return fmt.Errorf("reader registry: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		r.lg.Warn("no xlsx exports found", zap.String("dir", dir))
		return nil
	}

	byName := make(map[string]string, len(paths))
	for _, path := range paths {
		name := strings.ToLower(filepath.Base(path))
		// Office lock files start with "~$".
		if strings.HasPrefix(name, "~") {
			continue
		}
		byName[name] = path
	}

	// The roster establishes employees and their assignment windows;
	// the site labor table establishes charge numbers. Both must land
	// before any reader that references them.
	if path, ok := byName[rosterFile]; ok {
		r.process(path, NewRosterReader(r.Site, r.Team.ID, r.Now, r.lg))
		delete(byName, rosterFile)
	}
	if path, ok := byName[siteLaborFile]; ok {
		r.process(path, NewSiteLaborCodeReader(r.Site, r.LaborCompany, r.LaborDivision, r.Now, r.lg))
		delete(byName, siteLaborFile)
	}

	for name, path := range byName {
		build, ok := registry[name]
		if !ok {
			continue
		}
		r.process(path, build(r))
	}
	return nil
}

func (r *Runner) process(path string, p processor) {
	name := filepath.Base(path)
	sheet, err := LoadSheet(path)
	if err != nil {
		r.lg.Warn("skipping unreadable export", zap.String("file", name), zap.Error(err))
		return
	}
	r.lg.Info("processing export", zap.String("file", name), zap.Int("rows", sheet.Rows()))
	if err := p.Process(sheet); err != nil {
		r.lg.Error("export aborted", zap.String("file", name), zap.Error(err))
		return
	}
	r.lg.Info("export complete", zap.String("file", name))
}
