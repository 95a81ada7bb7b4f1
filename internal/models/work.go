package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work is a labor charge entry for one employee and day. Work entries
// are stored in their own collection, referencing the employee by its
// surrogate id. Natural key within an employee: (DateWorked,
// CompanyCode, ChargeNumber, Extension).
type Work struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   primitive.ObjectID `bson:"employee" json:"employee"`
	DateWorked   time.Time          `bson:"dateworked" json:"dateworked"`
	CompanyCode  string             `bson:"company" json:"company"`
	ChargeNumber string             `bson:"chargenumber" json:"chargenumber"`
	Extension    string             `bson:"extension" json:"extension"`
	Hours        float64            `bson:"hours" json:"hours"`
}

func (w *Work) Matches(date time.Time, company, chargeNumber, extension string) bool {
	return w.DateWorked.Equal(date) &&
		strings.EqualFold(w.CompanyCode, company) &&
		w.ChargeNumber == chargeNumber &&
		w.Extension == extension
}
