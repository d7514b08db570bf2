package modquery

import (
	"modfinder/lib/modmeta"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func rey() modmeta.Record {
	return modmeta.Record{
		Character:   "Rey",
		Sets:        []string{"health"},
		Receiver:    "speed",
		HoloArray:   "-",
		DataBus:     "-",
		Multiplexer: "-",
	}
}

func TestMatchSetMembership(t *testing.T) {
	r := modmeta.Record{Character: "Vader", Sets: []string{"health"}, Receiver: "speed"}
	require.False(t, Match(r, Query{Set: "speed"}))
	require.False(t, Match(r, Query{Set: "speed", Shape: modmeta.ShapeArrow, Primary: "speed"}))
	require.True(t, Match(r, Query{Set: "health"}))
}

func TestMatchPrimary(t *testing.T) {
	slashed := modmeta.Record{Character: "A", Sets: []string{"speed"}, Receiver: "health / speed"}
	joined := modmeta.Record{Character: "B", Sets: []string{"speed"}, Receiver: "healthspeed"}
	q := Query{Set: "speed", Shape: modmeta.ShapeArrow, Primary: "speed"}

	require.True(t, Match(slashed, q))
	require.False(t, Match(joined, q))

	upper := Query{Set: "speed", Shape: modmeta.ShapeArrow, Primary: "SPEED"}
	require.True(t, Match(slashed, upper))
}

func TestMatchShapeSlots(t *testing.T) {
	r := modmeta.Record{
		Character:   "C",
		Sets:        []string{"offense"},
		Receiver:    "speed",
		HoloArray:   "critical damage",
		DataBus:     "protection",
		Multiplexer: "potency / offense",
	}

	table := []struct {
		shape    modmeta.Shape
		primary  string
		expected bool
	}{
		{shape: modmeta.ShapeArrow, primary: "speed", expected: true},
		{shape: modmeta.ShapeTriangle, primary: "critical damage", expected: true},
		{shape: modmeta.ShapeCircle, primary: "protection", expected: true},
		{shape: modmeta.ShapeCross, primary: "offense", expected: true},
		{shape: modmeta.ShapeCross, primary: "protection", expected: false},
		{shape: modmeta.ShapeCircle, primary: "potency", expected: false},
		{shape: modmeta.ShapeArrow, primary: "critical damage", expected: false},
	}

	for _, row := range table {
		q := Query{Set: "offense", Shape: row.shape, Primary: row.primary}
		require.Equal(t, row.expected, Match(r, q), q.String())
	}
}

func TestMatchShapeWithoutPrimary(t *testing.T) {
	r := modmeta.Record{Character: "D", Sets: []string{"potency"}, Receiver: ""}
	require.True(t, Match(r, Query{Set: "potency", Shape: modmeta.ShapeArrow}))
}

func TestMatchPrimaryWithoutShape(t *testing.T) {
	r := modmeta.Record{Character: "E", Sets: []string{"potency"}, Receiver: "speed"}
	require.False(t, Match(r, Query{Set: "potency", Primary: "speed"}))
}

func TestFilter(t *testing.T) {
	records := []modmeta.Record{rey()}

	require.Equal(t, []string{"Rey"}, Filter(records, Query{
		Set:     "health",
		Shape:   modmeta.ShapeArrow,
		Primary: "speed",
	}))
	require.Empty(t, Filter(records, Query{Set: "speed"}))
}

func TestFilterOrderAndDuplicates(t *testing.T) {
	records := []modmeta.Record{
		{Character: "Rey", Sets: []string{"speed", "health"}, Receiver: "speed"},
		{Character: "Vader", Sets: []string{"offense"}, Receiver: "offense"},
		{Character: "Grievous", Sets: []string{"health"}, Receiver: "health/speed"},
		{Character: "Rey", Sets: []string{"health"}, Receiver: "speed"},
	}
	q := ParseQuery("health arrow speed")

	expected := []string{"Rey", "Grievous", "Rey"}
	first := Filter(records, q)
	if diff := cmp.Diff(expected, first); diff != "" {
		t.Fatal(diff)
	}

	// same text and records, same answer
	second := Filter(records, ParseQuery("health arrow speed"))
	require.Equal(t, first, second)
}
