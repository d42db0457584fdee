package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(Bundle) error { return nil }

func TestNewRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry(
		Entry{First: 'n', Second: 'c', Description: "create customer", Handler: noop},
		Entry{First: 'N', Second: 'I', Description: "create item", Handler: noop},
		Entry{First: 'g', Second: 'o', Description: "open overdue", Handler: noop},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Len(t, r.LookupByFirstKey("n"), 2)
	assert.Len(t, r.LookupByFirstKey("N"), 2, "lookup is case-insensitive")
	assert.Empty(t, r.LookupByFirstKey("x"))
	assert.Empty(t, r.LookupByFirstKey("esc"))

	e, ok := r.LookupSecond('n', "I")
	require.True(t, ok)
	assert.Equal(t, "create item", e.Description)
	assert.Equal(t, "n i", e.Sequence())

	_, ok = r.LookupSecond('g', "c")
	assert.False(t, ok)
}

func TestNewRegistry_PreservesOrder(t *testing.T) {
	r := MustNewRegistry(
		Entry{First: 'g', Second: 'o', Description: "overdue", Handler: noop},
		Entry{First: 'n', Second: 'c', Description: "customer", Handler: noop},
		Entry{First: 'g', Second: 'a', Description: "analytics", Handler: noop},
	)

	var got []string
	for _, e := range r.Entries() {
		got = append(got, e.Sequence())
	}
	assert.Equal(t, []string{"g o", "g a", "n c"}, got)
}

func TestNewRegistry_LookupReturnsCopy(t *testing.T) {
	r := MustNewRegistry(Entry{First: 'n', Second: 'c', Description: "customer", Handler: noop})

	entries := r.LookupByFirstKey("n")
	entries[0].Description = "changed"

	assert.Equal(t, "customer", r.LookupByFirstKey("n")[0].Description)
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		err     error
	}{
		{
			name: "duplicate pair",
			entries: []Entry{
				{First: 'n', Second: 'c', Description: "a", Handler: noop},
				{First: 'n', Second: 'c', Description: "b", Handler: noop},
			},
			err: ErrDuplicateChord,
		},
		{
			name: "duplicate pair differing in case",
			entries: []Entry{
				{First: 'n', Second: 'c', Description: "a", Handler: noop},
				{First: 'N', Second: 'C', Description: "b", Handler: noop},
			},
			err: ErrDuplicateChord,
		},
		{
			name:    "space is not a chord key",
			entries: []Entry{{First: ' ', Second: 'c', Description: "a", Handler: noop}},
			err:     ErrInvalidKey,
		},
		{
			name:    "missing handler",
			entries: []Entry{{First: 'n', Second: 'c', Description: "a"}},
			err:     ErrNilHandler,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.entries...)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMustNewRegistry_PanicsOnConflict(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry(
			Entry{First: 'g', Second: 'o', Description: "a", Handler: noop},
			Entry{First: 'g', Second: 'o', Description: "b", Handler: noop},
		)
	})
}

func TestParseSequence(t *testing.T) {
	first, second, err := ParseSequence("g x")
	require.NoError(t, err)
	assert.Equal(t, 'g', first)
	assert.Equal(t, 'x', second)

	first, second, err = ParseSequence("GX")
	require.NoError(t, err)
	assert.Equal(t, 'g', first)
	assert.Equal(t, 'x', second)

	_, _, err = ParseSequence("g")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, _, err = ParseSequence("a b c")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestBuildRegistry(t *testing.T) {
	r, err := BuildRegistry(map[string]string{"g x": "/reservations"})
	require.NoError(t, err)
	assert.Equal(t, len(DefaultEntries())+1, r.Len())

	e, ok := r.LookupSecond('g', "x")
	require.True(t, ok)
	assert.Equal(t, "go to /reservations", e.Description)

	_, err = BuildRegistry(map[string]string{"g o": "/reservations"})
	assert.ErrorIs(t, err, ErrDuplicateChord)

	_, err = BuildRegistry(map[string]string{"g x": "/nowhere"})
	assert.Error(t, err)
}
