package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

func TestList(t *testing.T) {
	testList := New[int]()
	requireListElements(t, testList, []int{})

	element1 := testList.PushBack(1)
	testList.PushBack(2)
	testList.PushFront(0)
	requireListElements(t, testList, []int{0, 1, 2})

	testList.Erase(element1)
	requireListElements(t, testList, []int{0, 2})

	testList.PushBack(3)
	requireListElements(t, testList, []int{0, 2, 3})

	require.Equal(t, 0, lo.PanicOnErr(testList.Front()))
	require.Equal(t, 3, lo.PanicOnErr(testList.Back()))
}

func TestList_Constructors(t *testing.T) {
	requireListElements(t, NewWithCount[int](3), []int{0, 0, 0})
	requireListElements(t, NewWithCount[string](0), []string{})
	requirePanicsWith(t, ErrInvalidArgument, func() { NewWithCount[int](-1) })

	source := NewFromValues([]int{1, 2, 3, 4})
	requireListElements(t, source, []int{1, 2, 3, 4})
	requireListElements(t, NewFromRange(source.CBegin().Next(), source.CEnd()), []int{2, 3, 4})
	requireListElements(t, NewFromRange(source.CBegin(), source.CBegin()), []int{})
	requireListElements(t, NewFromSeq(slices.Values([]string{"a", "b"})), []string{"a", "b"})

	requirePanicsWith(t, ErrIteratorOutOfRange, func() {
		NewFromRange(source.CBegin().Next(), source.CBegin())
	})
}

func TestList_FrontBackOnEmptyList(t *testing.T) {
	testList := New[int]()

	_, err := testList.Front()
	require.ErrorIs(t, err, ErrEmptyList)

	_, err = testList.Back()
	require.ErrorIs(t, err, ErrEmptyList)

	testList.PushBack(1)
	testList.Clear()

	_, err = testList.Front()
	require.ErrorIs(t, err, ErrEmptyList)
}

func TestList_CloneIsIndependent(t *testing.T) {
	original := NewFromValues([]int{1, 2, 3})
	clone := original.Clone()
	require.True(t, Equal(original, clone))

	_, err := clone.PopBack()
	require.NoError(t, err)
	clone.Begin().Set(10)

	requireListElements(t, original, []int{1, 2, 3})
	requireListElements(t, clone, []int{10, 2})
}

func TestList_CopyFrom(t *testing.T) {
	source := NewFromValues([]int{4, 5, 6})
	target := NewFromValues([]int{1, 2})
	stale := target.Begin()

	target.CopyFrom(source)
	requireListElements(t, target, []int{4, 5, 6})
	require.False(t, stale.Valid())

	target.PushBack(7)
	requireListElements(t, source, []int{4, 5, 6})

	target.CopyFrom(target)
	requireListElements(t, target, []int{4, 5, 6, 7})

	target.CopyFrom(New[int]())
	requireListElements(t, target, []int{})
}

func TestList_Replace(t *testing.T) {
	testList := NewFromValues([]string{"x", "y", "z"})

	testList.Replace("a", "b")
	requireListElements(t, testList, []string{"a", "b"})

	testList.Replace()
	requireListElements(t, testList, []string{})
}

func TestList_Traversal(t *testing.T) {
	testList := NewFromValues([]int{1, 2, 3, 4})

	require.Equal(t, []int{4, 3, 2, 1}, slices.Collect(testList.Backward()))

	var visited []int
	require.NoError(t, testList.ForEach(func(value int) error {
		visited = append(visited, value)

		return nil
	}))
	require.Equal(t, []int{1, 2, 3, 4}, visited)

	errStop := ierrors.New("stop")
	visited = nil
	require.ErrorIs(t, testList.ForEachReverse(func(value int) error {
		if value == 2 {
			return errStop
		}
		visited = append(visited, value)

		return nil
	}), errStop)
	require.Equal(t, []int{4, 3}, visited)

	sum := 0
	testList.Range(func(value int) { sum += value })
	require.Equal(t, 10, sum)

	for value := range testList.All() {
		if value == 2 {
			break
		}
	}
}

func TestList_Equality(t *testing.T) {
	require.True(t, Equal(NewFromValues([]int{1, 2, 3}), NewFromValues([]int{1, 2, 3})))
	require.True(t, Equal(New[int](), New[int]()))
	require.False(t, Equal(NewFromValues([]int{1, 2, 3}), NewFromValues([]int{1, 2})))
	require.False(t, Equal(NewFromValues([]int{1, 2, 3}), NewFromValues([]int{1, 2, 4})))

	caseInsensitive := func(a, b string) bool { return len(a) == len(b) && (a == b || a[0]^b[0] == 0x20) }
	require.True(t, NewFromValues([]string{"a", "B"}).EqualFunc(NewFromValues([]string{"A", "b"}), caseInsensitive))
}

// requireListElements verifies the length, the content in both directions and the link structure of a List.
func requireListElements[T any](t *testing.T, testList *List[T], expectedValues []T) {
	t.Helper()

	require.NoError(t, testList.Validate())
	require.Equal(t, len(expectedValues), testList.Size())
	require.Equal(t, len(expectedValues) == 0, testList.Empty())

	require.Equal(t, expectedValues, testList.Values())

	reversed := slices.Clone(expectedValues)
	slices.Reverse(reversed)
	require.Equal(t, reversed, append(make([]T, 0), slices.Collect(testList.Backward())...))
}

// requirePanicsWith verifies that f panics with an error that wraps target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic wrapping %q", target)

		err, isError := recovered.(error)
		require.True(t, isError, "unexpected panic value %v", recovered)
		require.ErrorIs(t, err, target)
	}()

	f()
}
