package generator

import (
	"encoding/json"
	"fmt"

	"txnloader/faker"
	"txnloader/models"

	"github.com/google/uuid"
)

const (
	actionCode    = 10
	nilActionCode = 12
	countryUS     = "US"
)

// msg mirrors the JSON document stored in the msg column.
type msg struct {
	Entity                   bool    `json:"entity"`
	EntityIndividualLastName string  `json:"entityIndividualLastName"`
	IndividualFirstName      string  `json:"individualFirstName"`
	City                     string  `json:"city"`
	CountryCode              string  `json:"countryCode"`
	StateCode                string  `json:"stateCode"`
	StreetAddress            string  `json:"streetAddress"`
	ZipCode                  string  `json:"zipCode"`
	PhoneNumber              string  `json:"phoneNumber"`
	TinIssuerCountry         string  `json:"tinIssuerCountry"`
	IDType                   int     `json:"idType"`
	IDIssuerCountry          string  `json:"idIssuerCountry"`
	IDIssuerState            string  `json:"idIssuerState"`
	IDNumber                 string  `json:"idNumber"`
	DOB                      int     `json:"dob"`
	UID                      string  `json:"uid"`
	Location                 string  `json:"location"`
	TS                       int64   `json:"ts"`
	CtrID                    int     `json:"ctrId"`
	Amount                   float64 `json:"amount"`
	EmployeeID               string  `json:"employeeId"`
}

// Generator builds synthetic records for one worker. Not safe for
// concurrent use; every worker owns its own instance.
type Generator struct {
	f       *faker.Faker
	startTS int64
}

// New returns a Generator stamping timestamps relative to startTS, the
// run-start instant in milliseconds since epoch.
func New(f *faker.Faker, startTS int64) *Generator {
	return &Generator{f: f, startTS: startTS}
}

// LocDetail derives the fixed-width location tag for a worker.
func LocDetail(workerID int) string {
	return fmt.Sprintf("ARCC%04d", workerID)
}

// Msg serializes one payload document embedding the given identity,
// location tag and timestamp verbatim.
func (g *Generator) Msg(uid, loc string, ts int64) (string, error) {
	amount, _ := g.f.Amount().Float64()
	m := msg{
		Entity:                   false,
		EntityIndividualLastName: g.f.LastName(),
		IndividualFirstName:      g.f.FirstName(),
		City:                     g.f.City(),
		CountryCode:              countryUS,
		StateCode:                g.f.StateAbbr(),
		StreetAddress:            g.f.StreetAddress(),
		ZipCode:                  g.f.ZipCode(),
		PhoneNumber:              g.f.Phone(),
		TinIssuerCountry:         countryUS,
		IDType:                   g.f.IDType(),
		IDIssuerCountry:          countryUS,
		IDIssuerState:            g.f.StateAbbr(),
		IDNumber:                 g.f.IDNumber(),
		DOB:                      g.f.DOB(),
		UID:                      uid,
		Location:                 loc,
		TS:                       ts,
		CtrID:                    g.f.CtrID(),
		Amount:                   amount,
		EmployeeID:               g.f.EmployeeID(),
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Record builds one full destination row for the worker. Identifier
// uniqueness is statistical, not verified.
func (g *Generator) Record(workerID int, loc string) (models.Record, error) {
	uid := uuid.New().String()
	ts := g.startTS + g.f.TSJitter()
	m, err := g.Msg(uid, loc, ts)
	if err != nil {
		return models.Record{}, err
	}
	return models.Record{
		WorkerID:  workerID,
		UniqueID:  uid,
		LocDetail: loc,
		TS:        ts,
		Msg:       m,
		Action:    actionCode,
		TxnID:     g.f.TxnRef(),
		NilAction: nilActionCode,
	}, nil
}
