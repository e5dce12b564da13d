// core/sieve/sieve.go
package sieve

import (
	"fmt"
	"math"
)

// MaxBound is the largest upper limit a Table can represent: the flag
// slice needs bound+1 entries and Go slice lengths are ints.
const MaxBound = uint64(math.MaxInt - 1)

// AllocationError reports that the runtime refused to allocate the flag
// table for a bound. The run cannot proceed without the table.
type AllocationError struct {
	Bound uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("sieve: cannot allocate flag table for bound %d", e.Bound)
}

// Table holds one primality flag per integer in [0, bound]. A set flag
// means "currently believed prime"; 0 and 1 are cleared at construction
// and never set again. After EliminateComposites the table is final and
// only read.
type Table struct {
	bound uint64
	flags []bool
}

// New allocates a table for [0, bound] with every candidate flagged
// prime and 0 and 1 cleared. Callers validate the bound before calling:
// a value outside [2, MaxBound] is a contract breach and panics. A
// bound the runtime cannot back with memory returns *AllocationError.
func New(bound uint64) (t *Table, err error) {
	if bound < 2 || bound > MaxBound {
		panic(fmt.Sprintf("sieve: bound %d outside [2, %d]", bound, MaxBound))
	}
	defer func() {
		// make panics with "len out of range" when the allocation
		// exceeds what the runtime will grant.
		if recover() != nil {
			t, err = nil, &AllocationError{Bound: bound}
		}
	}()
	flags := make([]bool, bound+1)
	for i := range flags {
		flags[i] = true
	}
	flags[0], flags[1] = false, false
	return &Table{bound: bound, flags: flags}, nil
}

// EliminateComposites clears the flag of every composite in place.
// The outer condition i <= bound/i is the integer form of i*i <= bound
// and cannot overflow at the top of the representable range; striking
// starts at i*i because smaller multiples were already cleared by a
// smaller prime factor. Running it a second time changes nothing.
func (t *Table) EliminateComposites() {
	for i := uint64(2); i <= t.bound/i; i++ {
		if !t.flags[i] {
			continue
		}
		for j := i * i; j <= t.bound; j += i {
			t.flags[j] = false
		}
	}
}

// Bound returns the inclusive upper limit of the table.
func (t *Table) Bound() uint64 { return t.bound }

// IsPrime reports the flag for n; anything outside [0, bound] is false.
func (t *Table) IsPrime(n uint64) bool {
	return n <= t.bound && t.flags[n]
}

// Count returns the number of flags still set.
func (t *Table) Count() int {
	c := 0
	for _, f := range t.flags {
		if f {
			c++
		}
	}
	return c
}
