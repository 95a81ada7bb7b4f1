package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
	"github.com/antonerne/dgsc-reader/internal/repos"
)

// LoadService assembles the in-memory graph for one run: the team
// aggregate, the target site, the employees currently assigned there
// and their existing work entries.
type LoadService struct {
	Teams     *repos.TeamsRepo
	Employees *repos.EmployeesRepo
	Works     *repos.WorksRepo
	Logger    *zap.Logger
}

// LoadSite fetches the team by code, locates the site and attaches the
// team's employees whose active assignment window (January 1 of the
// previous year through now) places them at the site.
func (s *LoadService) LoadSite(ctx context.Context, teamCode, siteCode string,
	now time.Time) (*models.Team, *models.Site, error) {
	team, err := s.Teams.GetByCode(ctx, teamCode)
	if err != nil {
		return nil, nil, err
	}
	site := team.SiteByCode(siteCode)
	if site == nil {
		return nil, nil, fmt.Errorf("site %q not found in team %q", siteCode, teamCode)
	}

	emps, err := s.Employees.GetByTeam(ctx, team.ID)
	if err != nil {
		return nil, nil, err
	}

	windowStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	attached := 0
	for _, emp := range emps {
		current := emp.CurrentSite(windowStart, now)
		if strings.EqualFold(current, site.ID) || strings.EqualFold(current, site.Code) {
			if !site.AddEmployee(emp) {
				s.Logger.Warn("duplicate employee id in store; first wins",
					zap.String("employeeid", emp.CompanyInfo.EmployeeID))
				continue
			}
			attached++
		}
	}
	s.Logger.Info("site loaded",
		zap.String("site", site.Code),
		zap.Int("employees", attached))
	return team, site, nil
}

// AttachWork distributes the stored work entries onto the attached
// employees by surrogate id.
func (s *LoadService) AttachWork(ctx context.Context, site *models.Site) error {
	works, err := s.Works.GetAll(ctx)
	if err != nil {
		return err
	}
	count := 0
	for _, wk := range works {
		for _, emp := range site.Employees {
			if emp.ID == wk.EmployeeID {
				emp.Work = append(emp.Work, wk)
				count++
				break
			}
		}
	}
	s.Logger.Info("work entries attached", zap.Int("count", count))
	return nil
}
