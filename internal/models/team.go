package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Team is the organizational root aggregate. It embeds the companies a
// team bills against and the sites it schedules, plus the display and
// permission configuration the scheduler front-end uses.
type Team struct {
	ID              string           `bson:"_id" json:"id"`
	Code            string           `bson:"code" json:"code"`
	Name            string           `bson:"name" json:"name"`
	DateCreated     time.Time        `bson:"date_created" json:"date_created"`
	LastUpdated     time.Time        `bson:"last_updated" json:"last_updated"`
	Companies       []Company        `bson:"companies" json:"companies"`
	DisplayCodes    []DisplayCode    `bson:"displayCodes,omitempty" json:"displayCodes,omitempty"`
	SpecialtyGroups []SpecialtyGroup `bson:"specialtyGroups,omitempty" json:"specialtyGroups,omitempty"`
	ContactTypes    []ContactType    `bson:"contactTypes,omitempty" json:"contactTypes,omitempty"`
	Permissions     []Permission     `bson:"permissions,omitempty" json:"permissions,omitempty"`
	Sites           []Site           `bson:"sites,omitempty" json:"sites,omitempty"`
}

func NewTeam(code, name string) *Team {
	now := time.Now().UTC()
	return &Team{
		ID:          uuid.NewString(),
		Code:        code,
		Name:        name,
		DateCreated: now,
		LastUpdated: now,
	}
}

// CompanyByCode matches case-insensitively; holiday rows spell company
// codes inconsistently across export files.
func (t *Team) CompanyByCode(code string) *Company {
	for i := range t.Companies {
		if strings.EqualFold(t.Companies[i].Code, code) {
			return &t.Companies[i]
		}
	}
	return nil
}

func (t *Team) AddCompany(code, title, timecard string) *Company {
	for i := range t.Companies {
		if strings.EqualFold(t.Companies[i].Code, code) {
			t.Companies[i].Title = title
			t.Companies[i].TimeCardSystem = timecard
			t.LastUpdated = time.Now().UTC()
			return &t.Companies[i]
		}
	}
	t.Companies = append(t.Companies, Company{
		ID:             uuid.NewString(),
		Code:           code,
		Title:          title,
		TimeCardSystem: timecard,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.Companies[len(t.Companies)-1]
}

func (t *Team) SiteByCode(code string) *Site {
	for i := range t.Sites {
		if strings.EqualFold(t.Sites[i].Code, code) {
			return &t.Sites[i]
		}
	}
	return nil
}

func (t *Team) AddSite(code, title string, utcdiff int) *Site {
	if site := t.SiteByCode(code); site != nil {
		site.Title = title
		site.UtcDifference = utcdiff
		t.LastUpdated = time.Now().UTC()
		return site
	}
	t.Sites = append(t.Sites, Site{
		ID:            uuid.NewString(),
		Code:          code,
		Title:         title,
		UtcDifference: utcdiff,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.Sites[len(t.Sites)-1]
}

// UpdateSite writes a mutated site back into the team by code.
func (t *Team) UpdateSite(site *Site) bool {
	for i := range t.Sites {
		if strings.EqualFold(t.Sites[i].Code, site.Code) {
			t.Sites[i] = *site
			t.LastUpdated = time.Now().UTC()
			return true
		}
	}
	return false
}

func (t *Team) AddDisplayCode(code, name, backColor, textColor string, isLeave bool) *DisplayCode {
	order := -1
	for i := range t.DisplayCodes {
		if t.DisplayCodes[i].Code == code {
			t.DisplayCodes[i].Name = name
			t.DisplayCodes[i].BackColor = backColor
			t.DisplayCodes[i].TextColor = textColor
			t.DisplayCodes[i].IsLeave = isLeave
			t.LastUpdated = time.Now().UTC()
			return &t.DisplayCodes[i]
		}
		if t.DisplayCodes[i].Order > order {
			order = t.DisplayCodes[i].Order
		}
	}
	t.DisplayCodes = append(t.DisplayCodes, DisplayCode{
		ID:        uuid.NewString(),
		Code:      code,
		Name:      name,
		BackColor: backColor,
		TextColor: textColor,
		IsLeave:   isLeave,
		Order:     order + 1,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.DisplayCodes[len(t.DisplayCodes)-1]
}

func (t *Team) AddContactType(code, description string, required bool) *ContactType {
	order := -1
	for i := range t.ContactTypes {
		if t.ContactTypes[i].Code == code {
			t.ContactTypes[i].Description = description
			t.ContactTypes[i].IsRequired = required
			t.LastUpdated = time.Now().UTC()
			return &t.ContactTypes[i]
		}
		if t.ContactTypes[i].Order > order {
			order = t.ContactTypes[i].Order
		}
	}
	t.ContactTypes = append(t.ContactTypes, ContactType{
		ID:          uuid.NewString(),
		Code:        code,
		Description: description,
		IsRequired:  required,
		Order:       order + 1,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.ContactTypes[len(t.ContactTypes)-1]
}

func (t *Team) AddSpecialtyGroup(code, title string) *SpecialtyGroup {
	for i := range t.SpecialtyGroups {
		if t.SpecialtyGroups[i].Code == code {
			t.SpecialtyGroups[i].Title = title
			t.LastUpdated = time.Now().UTC()
			return &t.SpecialtyGroups[i]
		}
	}
	t.SpecialtyGroups = append(t.SpecialtyGroups, SpecialtyGroup{
		ID:    uuid.NewString(),
		Code:  code,
		Title: title,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.SpecialtyGroups[len(t.SpecialtyGroups)-1]
}

func (t *Team) AddPermission(title string, read, write, approver, admin bool) *Permission {
	for i := range t.Permissions {
		if strings.EqualFold(t.Permissions[i].Title, title) {
			t.Permissions[i].Read = read
			t.Permissions[i].Write = write
			t.Permissions[i].Approver = approver
			t.Permissions[i].Admin = admin
			t.LastUpdated = time.Now().UTC()
			return &t.Permissions[i]
		}
	}
	t.Permissions = append(t.Permissions, Permission{
		ID:       uuid.NewString(),
		Title:    title,
		Read:     read,
		Write:    write,
		Approver: approver,
		Admin:    admin,
	})
	t.LastUpdated = time.Now().UTC()
	return &t.Permissions[len(t.Permissions)-1]
}

// Company is a billing company owned by a team. Holidays hang off the
// company because observed dates differ per company contract.
type Company struct {
	ID             string    `bson:"id" json:"id"`
	Code           string    `bson:"code" json:"code"`
	Title          string    `bson:"title" json:"title"`
	TimeCardSystem string    `bson:"timecard,omitempty" json:"timecard,omitempty"`
	Holidays       []Holiday `bson:"holidays,omitempty" json:"holidays,omitempty"`
}

func (c *Company) HolidayByCode(code string) *Holiday {
	for i := range c.Holidays {
		if strings.EqualFold(c.Holidays[i].Code, code) {
			return &c.Holidays[i]
		}
	}
	return nil
}

func (c *Company) AddHoliday(code, name string) *Holiday {
	if hol := c.HolidayByCode(code); hol != nil {
		hol.Name = name
		return hol
	}
	c.Holidays = append(c.Holidays, Holiday{
		ID:   uuid.NewString(),
		Code: code,
		Name: name,
	})
	return &c.Holidays[len(c.Holidays)-1]
}

// Holiday holds the observed calendar dates for one holiday code. The
// dates are recomputed from scratch on every ingest run.
type Holiday struct {
	ID          string      `bson:"id" json:"id"`
	Code        string      `bson:"code" json:"code"`
	Name        string      `bson:"name" json:"name"`
	ActualDates []time.Time `bson:"actualdates,omitempty" json:"actualdates,omitempty"`
}

func (h *Holiday) ClearActualDates() {
	h.ActualDates = h.ActualDates[:0]
}

func (h *Holiday) AddActualDate(date time.Time) {
	h.ActualDates = append(h.ActualDates, date)
	sort.Slice(h.ActualDates, func(i, j int) bool {
		return h.ActualDates[i].Before(h.ActualDates[j])
	})
}

type DisplayCode struct {
	ID        string `bson:"id" json:"id"`
	Code      string `bson:"code" json:"code"`
	Name      string `bson:"name" json:"name"`
	BackColor string `bson:"backcolor" json:"backcolor"`
	TextColor string `bson:"textcolor" json:"textcolor"`
	IsLeave   bool   `bson:"isleave" json:"isleave"`
	Order     int    `bson:"order" json:"order"`
}

type SpecialtyGroup struct {
	ID    string `bson:"id" json:"id"`
	Code  string `bson:"code" json:"code"`
	Title string `bson:"title" json:"title"`
}

type ContactType struct {
	ID          string `bson:"id" json:"id"`
	Code        string `bson:"code" json:"code"`
	Description string `bson:"description" json:"description"`
	IsRequired  bool   `bson:"isrequired" json:"isrequired"`
	Order       int    `bson:"order" json:"order"`
}

type Permission struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Read     bool   `bson:"read" json:"read"`
	Write    bool   `bson:"write" json:"write"`
	Approver bool   `bson:"approver" json:"approver"`
	Admin    bool   `bson:"admin" json:"admin"`
}
