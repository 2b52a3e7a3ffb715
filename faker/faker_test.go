package faker

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

const samples = 10000

func TestAmountBounds(t *testing.T) {
	f := New(42)
	min := decimal.New(100000, -2)  // 1000.00
	max := decimal.New(9999999, -2) // 99999.99
	for i := 0; i < samples; i++ {
		a := f.Amount()
		if a.Cmp(min) < 0 || a.Cmp(max) > 0 {
			t.Fatalf("amount %s outside [%s, %s]", a, min, max)
		}
		if a.Exponent() != -2 {
			t.Fatalf("amount %s does not have exactly 2 decimal places", a)
		}
	}
}

func TestDOBBounds(t *testing.T) {
	f := New(42)
	for i := 0; i < samples; i++ {
		dob := f.DOB()
		if dob < 19600101 || dob > 20051231 {
			t.Fatalf("dob %d outside [19600101, 20051231]", dob)
		}
	}
}

func TestPhoneShape(t *testing.T) {
	f := New(42)
	for i := 0; i < samples; i++ {
		phone := f.Phone()
		if len(phone) != 10 {
			t.Fatalf("phone %q is not 10 digits", phone)
		}
		if phone[0] < '6' || phone[0] > '9' {
			t.Fatalf("phone %q does not start with a digit in [6, 9]", phone)
		}
		if _, err := strconv.ParseInt(phone, 10, 64); err != nil {
			t.Fatalf("phone %q is not numeric: %v", phone, err)
		}
	}
}

func TestNumericStringRanges(t *testing.T) {
	f := New(42)
	testCases := []struct {
		name string
		gen  func() string
		lo   int
		hi   int
	}{
		{"id number", f.IDNumber, 10000000, 99999999},
		{"employee id", f.EmployeeID, 40000, 49999},
	}
	for _, testCase := range testCases {
		for i := 0; i < samples; i++ {
			s := testCase.gen()
			n, err := strconv.Atoi(s)
			if err != nil {
				t.Fatalf("%s %q is not numeric: %v", testCase.name, s, err)
			}
			if n < testCase.lo || n > testCase.hi {
				t.Fatalf("%s %d outside [%d, %d]", testCase.name, n, testCase.lo, testCase.hi)
			}
		}
	}
}

func TestIntRanges(t *testing.T) {
	f := New(42)
	testCases := []struct {
		name string
		gen  func() int
		lo   int
		hi   int
	}{
		{"ctr id", f.CtrID, 10, 99},
		{"id type", f.IDType, 1, 9},
		{"txn ref", f.TxnRef, 7000, 999999},
	}
	for _, testCase := range testCases {
		for i := 0; i < samples; i++ {
			n := testCase.gen()
			if n < testCase.lo || n > testCase.hi {
				t.Fatalf("%s %d outside [%d, %d]", testCase.name, n, testCase.lo, testCase.hi)
			}
		}
	}
}

func TestTSJitterBounds(t *testing.T) {
	f := New(42)
	for i := 0; i < samples; i++ {
		j := f.TSJitter()
		if j < 0 || j > 10000000 {
			t.Fatalf("jitter %d outside [0, 10000000]", j)
		}
	}
}

func TestZipCodeShape(t *testing.T) {
	f := New(42)
	for i := 0; i < samples; i++ {
		zip := f.ZipCode()
		if len(zip) != 5 {
			t.Fatalf("zip %q is not 5 digits", zip)
		}
		if _, err := strconv.Atoi(zip); err != nil {
			t.Fatalf("zip %q is not numeric: %v", zip, err)
		}
	}
}

func TestStateAbbrShape(t *testing.T) {
	f := New(42)
	for i := 0; i < 100; i++ {
		if s := f.StateAbbr(); len(s) != 2 {
			t.Fatalf("state abbreviation %q is not two letters", s)
		}
	}
}

func TestSeededReproducibility(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 100; i++ {
		if a.Phone() != b.Phone() {
			t.Fatal("identically seeded fakers diverged")
		}
	}
}
