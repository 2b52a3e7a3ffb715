package faker

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

// Faker fabricates realistic-looking personal and financial field values.
// Each instance owns its own random source so concurrent workers never
// contend on a shared one.
type Faker struct {
	rnd *rand.Rand
}

// New returns a Faker seeded with the given value. Workers seed with
// distinct values; tests seed with a constant for reproducibility.
func New(seed int64) *Faker {
	return &Faker{rnd: rand.New(rand.NewSource(seed))}
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Christopher",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Sandra",
	"Mark", "Margaret", "Donald", "Ashley", "Steven", "Kimberly", "Andrew",
	"Emily", "Paul", "Donna", "Joshua", "Michelle",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol", "Fairview",
	"Salem", "Madison", "Georgetown", "Arlington", "Ashland", "Dover",
	"Oxford", "Jackson", "Burlington", "Manchester", "Milton", "Newport",
	"Auburn", "Centerville", "Clayton", "Dayton", "Lexington", "Milford",
	"Riverside", "Cleveland", "Hudson", "Kingston", "Lancaster", "Oakland",
}

var stateAbbrs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY",
}

var streetNames = []string{
	"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake",
	"Hill", "Park", "Walnut", "Spring", "North", "Ridge", "Church",
	"Willow", "Mill", "Sunset", "Railroad", "Jefferson",
}

var streetSuffixes = []string{
	"St", "Ave", "Rd", "Blvd", "Ln", "Dr", "Ct", "Pl", "Way", "Ter",
}

// FirstName returns a fabricated first name.
func (f *Faker) FirstName() string {
	return firstNames[f.rnd.Intn(len(firstNames))]
}

// LastName returns a fabricated last name.
func (f *Faker) LastName() string {
	return lastNames[f.rnd.Intn(len(lastNames))]
}

// City returns a fabricated city name.
func (f *Faker) City() string {
	return cities[f.rnd.Intn(len(cities))]
}

// StateAbbr returns a two-letter US state abbreviation.
func (f *Faker) StateAbbr() string {
	return stateAbbrs[f.rnd.Intn(len(stateAbbrs))]
}

// StreetAddress returns a fabricated street address.
func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%d %s %s",
		f.intRange(1, 9999),
		streetNames[f.rnd.Intn(len(streetNames))],
		streetSuffixes[f.rnd.Intn(len(streetSuffixes))])
}

// ZipCode returns a fabricated 5-digit postal code.
func (f *Faker) ZipCode() string {
	return fmt.Sprintf("%05d", f.rnd.Intn(100000))
}

// Phone returns a 10-digit phone-shaped numeric string with the first
// digit in [6, 9].
func (f *Faker) Phone() string {
	return fmt.Sprintf("%d", f.int64Range(6000000000, 9999999999))
}

// IDNumber returns an 8-digit government-id-shaped numeric string.
func (f *Faker) IDNumber() string {
	return fmt.Sprintf("%d", f.intRange(10000000, 99999999))
}

// DOB returns a date of birth encoded as an 8-digit YYYYMMDD integer.
// Drawn uniformly from the whole numeric range, not from valid calendar
// dates only.
func (f *Faker) DOB() int {
	return f.intRange(19600101, 20051231)
}

// Amount returns a monetary amount in [1000.00, 99999.99] with exactly
// two decimal places.
func (f *Faker) Amount() decimal.Decimal {
	cents := int64(f.intRange(100000, 9999999))
	return decimal.New(cents, -2)
}

// EmployeeID returns a 5-digit employee-id-shaped numeric string.
func (f *Faker) EmployeeID() string {
	return fmt.Sprintf("%d", f.intRange(40000, 49999))
}

// CtrID returns a category code in [10, 99].
func (f *Faker) CtrID() int {
	return f.intRange(10, 99)
}

// IDType returns an id-type code in [1, 9].
func (f *Faker) IDType() int {
	return f.intRange(1, 9)
}

// TxnRef returns a transaction reference in [7000, 999999].
func (f *Faker) TxnRef() int {
	return f.intRange(7000, 999999)
}

// TSJitter returns a timestamp offset in [0, 10000000] milliseconds.
func (f *Faker) TSJitter() int64 {
	return f.rnd.Int63n(10000001)
}

func (f *Faker) intRange(lo, hi int) int {
	return lo + f.rnd.Intn(hi-lo+1)
}

func (f *Faker) int64Range(lo, hi int64) int64 {
	return lo + f.rnd.Int63n(hi-lo+1)
}
