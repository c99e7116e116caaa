package violation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coded(message, code string) *ConstraintViolation {
	return NewConstraintViolation(message, message, nil, nil, "", nil, WithCode(code))
}

func uncoded(message string) *ConstraintViolation {
	return NewConstraintViolation(message, message, nil, nil, "", nil)
}

func messages(l *List) []string {
	var out []string
	for v := range l.Values() {
		out = append(out, v.Message())
	}
	return out
}

func TestNewList_CountMatchesInput(t *testing.T) {
	tests := []struct {
		name       string
		violations []Violation
	}{
		{name: "empty", violations: nil},
		{name: "one", violations: []Violation{uncoded("a")}},
		{name: "three", violations: []Violation{uncoded("a"), uncoded("b"), uncoded("c")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(tt.violations...)
			assert.Equal(t, len(tt.violations), l.Len())
			for i := range tt.violations {
				got, err := l.Get(i)
				require.NoError(t, err)
				assert.Same(t, tt.violations[i], got)
			}
		})
	}
}

func TestList_ZeroValueIsUsable(t *testing.T) {
	var l List
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Has(0))
	assert.Equal(t, "", l.String())

	l.Add(uncoded("a"))
	assert.True(t, l.Has(0))
	assert.Equal(t, 1, l.Len())
}

func TestCreateFromMessage(t *testing.T) {
	l := CreateFromMessage("bad value")
	require.Equal(t, 1, l.Len())

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "bad value", v.Message())

	_, ok := v.Code()
	assert.False(t, ok, "code should be absent")

	cv, ok := v.(*ConstraintViolation)
	require.True(t, ok)
	assert.Empty(t, cv.MessageTemplate())
	assert.Empty(t, cv.PropertyPath())
	assert.Empty(t, cv.Parameters())
	assert.Nil(t, cv.Root())
	assert.Nil(t, cv.InvalidValue())
	assert.Nil(t, cv.Cause())
}

func TestList_RemoveKeepsOffsets(t *testing.T) {
	v1, v2 := uncoded("v1"), uncoded("v2")
	l := NewList()
	l.Add(v1)
	l.Add(v2)
	l.Remove(0)

	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Has(0))
	assert.True(t, l.Has(1))
	assert.Equal(t, []Violation{v2}, l.Slice())

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Same(t, v2, got)
}

func TestList_RemoveIsIdempotent(t *testing.T) {
	l := NewList(uncoded("a"), uncoded("b"), uncoded("c"))
	l.Remove(1)
	once := l.Slice()

	l.Remove(1)
	assert.Equal(t, once, l.Slice())
	assert.Equal(t, 2, l.Len())

	l.Remove(42)
	assert.Equal(t, 2, l.Len())
}

func TestList_AddAfterRemoveDoesNotOverwrite(t *testing.T) {
	l := NewList(uncoded("a"), uncoded("b"))
	l.Remove(0)
	l.Add(uncoded("c"))

	assert.Equal(t, 2, l.Len())
	assert.False(t, l.Has(0))
	assert.True(t, l.Has(1))
	assert.True(t, l.Has(2))
	assert.Equal(t, []string{"b", "c"}, messages(l))
}

func TestList_SetBeyondLength(t *testing.T) {
	l := NewList(uncoded("a"))
	l.Set(5, uncoded("far"))

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Has(5))
	assert.False(t, l.Has(1))

	l.Add(uncoded("next"))
	assert.True(t, l.Has(6))
	assert.Equal(t, []string{"a", "far", "next"}, messages(l))
}

func TestList_SetOverwritesAndRestoresRemoved(t *testing.T) {
	l := NewList(uncoded("a"), uncoded("b"))
	l.Set(0, uncoded("A"))
	assert.Equal(t, []string{"A", "b"}, messages(l))
	assert.Equal(t, 2, l.Len())

	l.Remove(1)
	l.Set(1, uncoded("B"))
	assert.True(t, l.Has(1))
	assert.Equal(t, []string{"A", "B"}, messages(l))
}

func TestList_IterationFollowsStorageOrder(t *testing.T) {
	l := NewList()
	l.Set(3, uncoded("three"))
	l.Set(1, uncoded("one"))
	l.Set(2, uncoded("two"))

	var offsets []int
	for offset := range l.All() {
		offsets = append(offsets, offset)
	}
	assert.Equal(t, []int{3, 1, 2}, offsets)

	// overwriting keeps the original position
	l.Set(1, uncoded("ONE"))
	assert.Equal(t, []string{"three", "ONE", "two"}, messages(l))
}

func TestList_SetAfterRemoveMovesToEnd(t *testing.T) {
	l := NewList(uncoded("v1"), uncoded("v2"))
	l.Remove(0)
	l.Set(0, uncoded("x"))

	assert.Equal(t, []string{"v2", "x"}, messages(l))
	assert.Equal(t, ":\n    v2\n:\n    x\n", l.String())

	var offsets []int
	for offset := range l.All() {
		offsets = append(offsets, offset)
	}
	assert.Equal(t, []int{1, 0}, offsets)
}

func TestList_AddAfterMaxOffsetIsDropped(t *testing.T) {
	l := NewList(uncoded("a"))
	l.Set(math.MaxInt, uncoded("max"))
	l.Add(uncoded("appended"))

	assert.Equal(t, 2, l.Len())
	assert.False(t, l.Has(math.MinInt))
	assert.Equal(t, []string{"a", "max"}, messages(l))

	got, err := l.Get(math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, "max", got.Message())

	// Set still works once appends are exhausted
	l.Set(5, uncoded("five"))
	assert.Equal(t, []string{"a", "max", "five"}, messages(l))
}

func TestList_IterationIsRestartable(t *testing.T) {
	l := NewList(uncoded("a"), uncoded("b"), uncoded("c"))
	seq := l.Values()

	var first, second []Violation
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
	}
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)

	// early break leaves later traversals intact
	for range seq {
		break
	}
	assert.Len(t, l.Slice(), 3)
}

func TestList_Get_AbsentOffset(t *testing.T) {
	l := NewList(uncoded("a"))
	l.Remove(0)

	for _, offset := range []int{0, 1, -1} {
		v, err := l.Get(offset)
		assert.Nil(t, v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOffsetNotFound))

		var notFound *OffsetNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, offset, notFound.Offset)
	}
}

func TestOffsetNotFoundError_Error(t *testing.T) {
	err := &OffsetNotFoundError{Offset: 7}
	assert.Equal(t, `the offset "7" does not exist`, err.Error())
}

func TestList_Put(t *testing.T) {
	l := NewList()
	l.Put(nil, uncoded("a"))
	l.Put(nil, uncoded("b"))
	assert.True(t, l.Has(0))
	assert.True(t, l.Has(1))

	offset := 0
	l.Put(&offset, uncoded("A"))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"A", "b"}, messages(l))

	far := 9
	l.Put(&far, uncoded("z"))
	assert.True(t, l.Has(9))
}

func TestList_AddAll(t *testing.T) {
	a := NewList(uncoded("a1"), uncoded("a2"))
	b := NewList(uncoded("b1"), uncoded("b2"), uncoded("b3"))
	b.Remove(1)
	before := b.Slice()

	a.AddAll(b)

	assert.Equal(t, []string{"a1", "a2", "b1", "b3"}, messages(a))
	assert.Equal(t, before, b.Slice(), "source list must not change")
	assert.Equal(t, 2, b.Len())
	assert.True(t, a.Has(3))
}

func TestList_AddAllSelf(t *testing.T) {
	l := NewList(uncoded("a"), uncoded("b"))
	l.AddAll(l)
	assert.Equal(t, []string{"a", "b", "a", "b"}, messages(l))
}

func TestList_AddAllNil(t *testing.T) {
	l := NewList(uncoded("a"))
	l.AddAll(nil)
	assert.Equal(t, 1, l.Len())
}

func TestList_String(t *testing.T) {
	assert.Equal(t, "", NewList().String())

	l := NewList(uncoded("first"), coded("second", "E2"))
	assert.Equal(t, ":\n    first\n:\n    second (code E2)\n", l.String())
}

func TestList_FindByCodes(t *testing.T) {
	first, second, third := coded("1", "A"), coded("2", "B"), coded("3", "A")
	l := NewList(first, second, third)

	found := l.FindByCodes("A")
	require.Equal(t, 2, found.Len())

	got0, err := found.Get(0)
	require.NoError(t, err)
	assert.Same(t, first, got0)
	got1, err := found.Get(1)
	require.NoError(t, err)
	assert.Same(t, third, got1)

	assert.Equal(t, 3, l.Len(), "receiver must not change")
}

func TestList_FindByCodes_Cases(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  []string
	}{
		{name: "single code", codes: []string{"B"}, want: []string{"b"}},
		{name: "several codes keep source order", codes: []string{"C", "A"}, want: []string{"a", "c", "a2"}},
		{name: "unknown code", codes: []string{"Z"}, want: nil},
		{name: "no codes", codes: nil, want: nil},
		{name: "empty code matches only empty", codes: []string{""}, want: []string{"empty"}},
	}

	l := NewList(
		coded("a", "A"),
		coded("b", "B"),
		uncoded("none"),
		coded("c", "C"),
		coded("empty", ""),
		coded("a2", "A"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messages(l.FindByCodes(tt.codes...)))
		})
	}
}

func TestList_FindByCodes_FreshOffsets(t *testing.T) {
	l := NewList()
	l.Set(4, coded("x", "A"))
	l.Set(10, coded("y", "A"))

	found := l.FindByCodes("A")
	assert.True(t, found.Has(0))
	assert.True(t, found.Has(1))
	assert.False(t, found.Has(4))
}

// reportList stands in for a caller type that wraps List.
type reportList struct {
	*List
	source string
}

func TestFindByCodes_KeepsWrapperKind(t *testing.T) {
	src := &reportList{List: NewList(coded("a", "A"), coded("b", "B")), source: "lint"}

	found := FindByCodes(src, func() *reportList {
		return &reportList{List: NewList(), source: src.source}
	}, "B")

	assert.Equal(t, "lint", found.source)
	assert.Equal(t, []string{"b"}, messages(found.List))
}

func TestList_Codes(t *testing.T) {
	l := NewList(coded("a", "A"), uncoded("x"), coded("b", "B"), coded("a2", "A"))
	assert.Equal(t, []string{"A", "B"}, l.Codes())
	assert.Empty(t, NewList(uncoded("x")).Codes())
}
