package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
	"github.com/antonerne/dgsc-reader/internal/repos"
)

// PersistService writes the mutated graph back. Persistence is
// per-entity: a failure on one employee or work entry is logged and
// skipped so the rest of the run still lands. There is no transaction
// across entities; a partially persisted run is accepted over an
// all-or-nothing rollback.
type PersistService struct {
	Teams     *repos.TeamsRepo
	Employees *repos.EmployeesRepo
	Works     *repos.WorksRepo
	Logger    *zap.Logger
}

// SaveSite persists every attached employee (create or replace by
// surrogate id), their work entries (replace existing, batch-insert
// new), then writes the site back into the team and replaces the team
// document.
func (s *PersistService) SaveSite(ctx context.Context, team *models.Team, site *models.Site) error {
	failures := 0
	for _, emp := range site.Employees {
		// The employee lands first so freshly created work entries can
		// reference its generated surrogate id.
		var err error
		if emp.ID.IsZero() {
			err = s.Employees.Create(ctx, emp)
		} else {
			err = s.Employees.Replace(ctx, emp)
		}
		if err != nil {
			s.Logger.Error("employee persist failed",
				zap.String("employeeid", emp.CompanyInfo.EmployeeID), zap.Error(err))
			failures++
			continue
		}

		var newWorks []models.Work
		for i := range emp.Work {
			wk := &emp.Work[i]
			if wk.ID.IsZero() {
				wk.EmployeeID = emp.ID
				newWorks = append(newWorks, *wk)
				continue
			}
			if err := s.Works.Replace(ctx, wk); err != nil {
				s.Logger.Error("work update failed",
					zap.String("employeeid", emp.CompanyInfo.EmployeeID), zap.Error(err))
				failures++
			}
		}
		if err := s.Works.CreateMany(ctx, newWorks); err != nil {
			s.Logger.Error("work insert failed",
				zap.String("employeeid", emp.CompanyInfo.EmployeeID), zap.Error(err))
			failures++
		}
	}

	if !team.UpdateSite(site) {
		s.Logger.Warn("site missing from team on write-back", zap.String("site", site.Code))
	}
	if err := s.Teams.Replace(ctx, team); err != nil {
		return err
	}
	if failures > 0 {
		s.Logger.Warn("run completed with partial persistence", zap.Int("failures", failures))
	}
	return nil
}
