package ingest

import (
	"fmt"
	"strings"
)

// processor is the contract every reader satisfies: one synchronous
// pass over a sheet, mutating the in-memory graph.
type processor interface {
	Process(sheet *Sheet) error
}

// Export file names the pipeline recognizes. The roster and the site
// labor code table are ordered explicitly because every other reader
// resolves employees or charge numbers they establish.
const (
	rosterFile    = "employees.xlsx"
	siteLaborFile = "laborcodes.xlsx"
)

// registry maps the remaining export file names to their reader
// constructors. Dispatch is declarative: adding a record kind means
// adding an entry here, not a branch in the runner.
var registry = map[string]func(*Runner) processor{
	"annualleave.xlsx": func(r *Runner) processor {
		return NewAnnualLeaveReader(r.Site, r.Now, r.lg)
	},
	"employeelaborcodes.xlsx": func(r *Runner) processor {
		return NewEmpLaborCodeReader(r.Site, r.Now, r.lg)
	},
	"holidayschedule.xlsx": func(r *Runner) processor {
		return NewHolidayScheduleReader(r.Team, r.Site.UtcDifference, r.Now, r.lg)
	},
	"leaves.xlsx": func(r *Runner) processor {
		return NewLeavesReader(r.Site, r.Now, r.lg)
	},
	"schedulevariations.xlsx": func(r *Runner) processor {
		return NewVariationReader(r.Site, r.lg)
	},
	"workhours.xlsx": func(r *Runner) processor {
		return NewWorkReader(r.Site, r.Now, r.lg)
	},
	"workschedule.xlsx": func(r *Runner) processor {
		return NewScheduleReader(r.Site, r.lg)
	},
}

// validateRegistry runs once at startup and rejects a malformed table
// before any file is touched.
func validateRegistry() error {
	for name, build := range registry {
		if build == nil {
			return fmt.Errorf("registry entry %q has no reader", name)
		}
		if name != strings.ToLower(name) || !strings.HasSuffix(name, ".xlsx") {
			return fmt.Errorf("registry entry %q is not a lowercase .xlsx name", name)
		}
		if name == rosterFile || name == siteLaborFile {
			return fmt.Errorf("registry entry %q shadows an ordered reader", name)
		}
	}
	return nil
}
