package violation

import (
	"iter"
	"math"
	"slices"
	"strings"
)

// Interface is the behavior shared by List and any type that wraps it.
type Interface interface {
	Add(v Violation)
	AddAll(other Interface)
	Get(offset int) (Violation, error)
	Has(offset int) bool
	Set(offset int, v Violation)
	Remove(offset int)
	Put(offset *int, v Violation)
	All() iter.Seq2[int, Violation]
	Values() iter.Seq[Violation]
	Len() int
	String() string
}

// List holds violations keyed by offset. Offsets are kept on removal, so a
// list may contain gaps. Iteration follows the order in which offsets were
// first stored; overwriting an offset keeps its position.
// The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List struct {
	items     map[int]Violation
	offsets   []int // present offsets, in first-stored order
	next      int   // offset assigned by the next Add
	exhausted bool  // math.MaxInt was assigned; Add has nowhere left to go
}

var _ Interface = (*List)(nil)

// NewList creates a list holding the given violations at offsets 0..n-1
func NewList(violations ...Violation) *List {
	l := &List{}
	for _, v := range violations {
		l.Add(v)
	}
	return l
}

// CreateFromMessage creates a single-element list from a bare message
func CreateFromMessage(message string) *List {
	return NewList(NewConstraintViolation(message, "", nil, nil, "", nil))
}

// Add appends v at the next free offset.
// The next free offset is one past the highest offset ever assigned, so an
// Add following a Remove never overwrites a live element. Once math.MaxInt
// has been assigned there is no next offset and Add drops v.
func (l *List) Add(v Violation) {
	if l.exhausted {
		return
	}
	l.Set(l.next, v)
}

// AddAll appends every violation of other, in other's iteration order.
// other is not modified; it may be l itself.
func (l *List) AddAll(other Interface) {
	if other == nil {
		return
	}
	for _, v := range slices.Collect(other.Values()) {
		l.Add(v)
	}
}

// Get returns the violation at offset or an *OffsetNotFoundError
func (l *List) Get(offset int) (Violation, error) {
	v, ok := l.items[offset]
	if !ok {
		return nil, &OffsetNotFoundError{Offset: offset}
	}
	return v, nil
}

// Has reports whether a violation occupies offset
func (l *List) Has(offset int) bool {
	_, ok := l.items[offset]
	return ok
}

// Set stores v at offset, replacing whatever was there.
// A new offset goes to the end of the iteration order.
func (l *List) Set(offset int, v Violation) {
	if l.items == nil {
		l.items = make(map[int]Violation)
	}
	if _, ok := l.items[offset]; !ok {
		l.offsets = append(l.offsets, offset)
	}
	l.items[offset] = v

	switch {
	case offset == math.MaxInt:
		l.exhausted = true
	case offset >= l.next:
		l.next = offset + 1
	}
}

// Remove deletes the violation at offset. Later offsets are not renumbered.
// Removing an absent offset is a no-op.
func (l *List) Remove(offset int) {
	if _, ok := l.items[offset]; !ok {
		return
	}
	delete(l.items, offset)
	if i := slices.Index(l.offsets, offset); i >= 0 {
		l.offsets = slices.Delete(l.offsets, i, i+1)
	}
}

// Put is the index-style write: a nil offset appends, otherwise it sets.
func (l *List) Put(offset *int, v Violation) {
	if offset == nil {
		l.Add(v)
		return
	}
	l.Set(*offset, v)
}

// All yields offset/violation pairs in storage order.
// Each call starts a fresh traversal.
func (l *List) All() iter.Seq2[int, Violation] {
	return func(yield func(int, Violation) bool) {
		for _, offset := range slices.Clone(l.offsets) {
			v, ok := l.items[offset]
			if !ok {
				continue
			}
			if !yield(offset, v) {
				return
			}
		}
	}
}

// Values yields the violations in storage order
func (l *List) Values() iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the violations in iteration order
func (l *List) Slice() []Violation {
	return slices.Collect(l.Values())
}

// Len returns the number of violations present, not the highest offset
func (l *List) Len() int {
	return len(l.items)
}

// Codes returns the distinct codes present, in first-seen order.
// Violations without a code are skipped.
func (l *List) Codes() []string {
	seen := make(map[string]bool)
	var codes []string
	for v := range l.Values() {
		code, ok := v.Code()
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

// String renders each violation followed by a newline
func (l *List) String() string {
	var sb strings.Builder
	for v := range l.Values() {
		sb.WriteString(v.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// FindByCodes returns a new list of the violations whose code equals one of codes
func (l *List) FindByCodes(codes ...string) *List {
	return FindByCodes(l, func() *List { return &List{} }, codes...)
}

// FindByCodes filters src by code into a list built by newList, so types
// wrapping List get back their own kind. Matching is exact: a violation
// without a code never matches, not even the empty string. The result is
// filled with Add and therefore has fresh offsets starting at 0.
func FindByCodes[L Interface](src Interface, newList func() L, codes ...string) L {
	wanted := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		wanted[c] = struct{}{}
	}

	out := newList()
	for v := range src.Values() {
		code, ok := v.Code()
		if !ok {
			continue
		}
		if _, match := wanted[code]; match {
			out.Add(v)
		}
	}
	return out
}
