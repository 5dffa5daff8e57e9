package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvkit/pkg/dict"
)

func newSortedABC(t *testing.T) *dict.SortedDict[string, int] {
	t.Helper()

	d := dict.NewSortedDict[string, int]()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)
	return d
}

func TestSortedDict_Ordering(t *testing.T) {
	t.Parallel()

	t.Run("keys ascend regardless of insertion order", func(t *testing.T) {
		t.Parallel()

		d := dict.NewSortedDict[string, int]()
		for i, key := range []string{"mango", "cherry", "apple", "plum", "banana"} {
			d.Set(key, i)
		}

		assert.Equal(t, []string{"apple", "banana", "cherry", "mango", "plum"}, d.Keys())
	})

	t.Run("order survives removals and inserts", func(t *testing.T) {
		t.Parallel()

		d := newSortedABC(t)

		_, err := d.Pop("b")
		require.NoError(t, err)
		d.Set("bb", 4)
		d.Set("0", 5)

		assert.Equal(t, []string{"0", "a", "bb", "c"}, d.Keys())
	})

	t.Run("replacement keeps position", func(t *testing.T) {
		t.Parallel()

		d := newSortedABC(t)
		d.Set("b", 99)

		assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
		got, err := d.Get("b")
		require.NoError(t, err)
		assert.Equal(t, 99, got)
	})

	t.Run("items and values align with keys", func(t *testing.T) {
		t.Parallel()

		d := newSortedABC(t)

		assert.Equal(t, []dict.Entry[string, int]{
			{Key: "a", Value: 1},
			{Key: "b", Value: 2},
			{Key: "c", Value: 3},
		}, d.Items())
		assert.Equal(t, []int{1, 2, 3}, d.Values())
	})

	t.Run("integer keys sort numerically", func(t *testing.T) {
		t.Parallel()

		d := dict.NewSortedDict[int, string]()
		d.Set(10, "ten")
		d.Set(2, "two")
		d.Set(33, "thirty-three")

		assert.Equal(t, []int{2, 10, 33}, d.Keys())
	})
}

func TestSortedDict_BisectLeft(t *testing.T) {
	t.Parallel()

	d := newSortedABC(t)

	tests := []struct {
		name string
		key  string
		want int
	}{
		{name: "below all keys", key: "A", want: 0},
		{name: "at first key", key: "a", want: 0},
		{name: "at middle key", key: "b", want: 1},
		{name: "at last key", key: "c", want: 2},
		{name: "between keys", key: "bb", want: 2},
		{name: "above all keys", key: "d", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.BisectLeft(tt.key))
		})
	}
}

func TestSortedDict_BisectRight(t *testing.T) {
	t.Parallel()

	d := newSortedABC(t)

	tests := []struct {
		name string
		key  string
		want int
	}{
		{name: "below all keys", key: "A", want: 0},
		{name: "at first key", key: "a", want: 1},
		{name: "at middle key", key: "b", want: 2},
		{name: "at last key", key: "c", want: 3},
		{name: "between keys", key: "bb", want: 2},
		{name: "above all keys", key: "d", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.BisectRight(tt.key))
		})
	}
}

func TestSortedDict_BisectOnEmpty(t *testing.T) {
	t.Parallel()

	d := dict.NewSortedDict[string, int]()
	assert.Equal(t, 0, d.BisectLeft("a"))
	assert.Equal(t, 0, d.BisectRight("a"))
}

func TestSortedDict_PeekItem(t *testing.T) {
	t.Parallel()

	d := newSortedABC(t)

	tests := []struct {
		name    string
		index   int
		wantKey string
		wantVal int
		wantErr bool
	}{
		{name: "first", index: 0, wantKey: "a", wantVal: 1},
		{name: "middle", index: 1, wantKey: "b", wantVal: 2},
		{name: "last", index: 2, wantKey: "c", wantVal: 3},
		{name: "last via negative", index: -1, wantKey: "c", wantVal: 3},
		{name: "middle via negative", index: -2, wantKey: "b", wantVal: 2},
		{name: "first via negative", index: -3, wantKey: "a", wantVal: 1},
		{name: "past the end", index: 3, wantErr: true},
		{name: "past the start", index: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry, err := d.PeekItem(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, dict.ErrIndexOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, entry.Key)
			assert.Equal(t, tt.wantVal, entry.Value)
		})
	}
}

func TestSortedDict_PeekItemEmpty(t *testing.T) {
	t.Parallel()

	d := dict.NewSortedDict[string, int]()

	_, err := d.PeekItem(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dict.ErrIndexOutOfRange)

	_, err = d.PeekItem(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, dict.ErrIndexOutOfRange)
}

func TestSortedDict_String(t *testing.T) {
	t.Parallel()

	d := dict.NewSortedDict[string, int]()
	d.Set("c", 3)
	d.Set("a", 1)
	d.Set("b", 2)

	assert.Equal(t, "{'a': 1, 'b': 2, 'c': 3}", d.String())
}
