package fold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-folds/collection"
	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/commonerrors/errortest"
)

func TestGroupBy(t *testing.T) {
	parity := func(x int) string {
		if isEven(x) {
			return "even"
		}
		return "odd"
	}
	result := RunSlice(GroupBy(Sum[int]{}, parity), collection.Range(1, 7, nil))
	assert.Equal(t, map[string]int{"even": 12, "odd": 9}, result)
	assert.Empty(t, RunSlice(GroupBy(Sum[int]{}, parity), nil))
}

func TestGroupBy_Composed(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry", "apricot"}
	initial := func(s string) byte { return s[0] }
	result := RunSlice(GroupBy(Par(Count[string]{}, PreMap(Max[int]{}, func(s string) int { return len(s) })), initial), words)
	require.Len(t, result, 3)
	assert.Equal(t, 3, result['a'].First)
	assert.Equal(t, 7, *result['a'].Second)
	assert.Equal(t, 2, result['b'].First)
	assert.Equal(t, 9, *result['b'].Second)
	assert.Equal(t, 1, result['c'].First)
}

func TestThen(t *testing.T) {
	// Maximum of the running sums.
	f := Then(Sum[int]{}, Max[int]{})
	result := RunSlice(f, []int{3, -1, 4, -10, 2})
	require.NotNil(t, result)
	assert.Equal(t, 6, *result)
	assert.Nil(t, RunSlice(f, nil))
	// The running sums are -1 and -3: the initial sum of 0 is not considered.
	result = RunSlice(f, []int{-1, -2})
	require.NotNil(t, result)
	assert.Equal(t, -1, *result)

	// Number of distinct running maxima.
	records := RunSlice(Then(Max[int]{}, PreMap(CountDistinct[int]{}, func(p *int) int { return *p })), []int{1, 3, 2, 5, 4, 5})
	assert.Equal(t, 3, records)
}

func TestBatched(t *testing.T) {
	chunks := [][]int{{1, 2}, {}, {3, 4, 5}, {6}}
	assert.Equal(t, 21, RunSlice(Batched(Sum[int]{}), chunks))
	assert.Equal(t, 3, RunSlice(Batched(Filter(Count[int]{}, isEven)), chunks))
	assert.Equal(t, collection.Range(1, 7, nil), RunSlice(Batched(Collect[int]{}), chunks))
}

func TestMany(t *testing.T) {
	_, err := Many[int, int, int](nil, 2)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = Many(Sum[int]{}, 0)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	f, err := Many(Sum[int]{}, 3)
	require.NoError(t, err)
	rows := [][]int{{1, 10, 100}, {2, 20, 200}, {3}, {4, 40, 400, 4000}}
	assert.Equal(t, []int{10, 70, 700}, RunSlice(f, rows))
	assert.Equal(t, []int{0, 0, 0}, RunSlice(f, nil))
}

func TestMany_Columns(t *testing.T) {
	table := "name,city\nada,london\nalan,wilmslow\ngrace,arlington"
	lines := strings.Split(table, "\n")[1:]
	rows := collection.Map(lines, func(line string) []string { return strings.Split(line, ",") })
	f, err := Many(PreMap(Max[int]{}, func(s string) int { return len(s) }), 2)
	require.NoError(t, err)
	widths := RunSlice(f, rows)
	require.Len(t, widths, 2)
	assert.Equal(t, 5, *widths[0])
	assert.Equal(t, 9, *widths[1])
}
