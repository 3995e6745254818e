// Package order_test: pretty-printer tests pinning the exact rendered
// form, including identifier assignment and cycle abbreviation.
package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intorder/intbound"
	"github.com/katalvlaran/intorder/order"
)

func TestString_LeafNode(t *testing.T) {
	a := order.New()
	require.Equal(t, "i0 = Node(unbounded)", a.String())

	b := order.New(order.WithBounds(intbound.NewBound(0, 10)))
	require.Equal(t, "i0 = Node([0..10])", b.String())
}

func TestString_StrictEdge(t *testing.T) {
	a := order.New()
	b := order.New(order.WithBounds(intbound.NewBound(0, 10)))
	require.NoError(t, a.MakeLt(b))

	// a's interval was refined through the relation: a < b caps a at 9.
	want := "i0 = Node((-inf..9]  {\n" +
		"    < i1 = Node([0..10])\n" +
		"})"
	require.Equal(t, want, a.String())
}

func TestString_EqualityCycleAbbreviated(t *testing.T) {
	a := order.New()
	b := order.New()
	require.NoError(t, a.MakeLe(b))
	require.NoError(t, b.MakeLe(a))

	// The revisit of a inside b's children renders as just the prefix
	// and a's identifier; the printer must not recurse forever.
	want := "i0 = Node(unbounded  {\n" +
		"    <= i1 = Node(unbounded  {\n" +
		"        <= i0\n" +
		"       })\n" +
		"})"
	require.Equal(t, want, a.String())
}

func TestFormat_IndentAndSeedSeen(t *testing.T) {
	a := order.New()
	b := order.New(order.WithBounds(intbound.NewBound(0, 3)))
	require.NoError(t, b.MakeLe(a))

	// A pre-seeded seen map continues the id sequence, and indentation is
	// applied to every produced line.
	seen := map[*order.Node]string{a: "i0"}
	lines := b.Format(2, 2, "", seen)
	require.Equal(t, []string{
		"  i1 = Node([0..3]  {",
		"    <= i0",
		"  })",
	}, lines)
}

func TestFormat_SharedNodeNamedOnce(t *testing.T) {
	a := order.New(order.WithBounds(intbound.NewBound(0, 5)))
	b := order.New(order.WithBounds(intbound.NewBound(0, 50)))
	c := order.New(order.WithBounds(intbound.NewBound(0, 100)))
	require.NoError(t, a.MakeLe(b))
	require.NoError(t, a.MakeLt(c))
	require.NoError(t, b.MakeLe(c))

	// c is reachable twice; the second sighting must reuse its id.
	want := "i0 = Node([0..5]  {\n" +
		"    <= i1 = Node([0..50]  {\n" +
		"        <= i2 = Node([0..100])\n" +
		"       })\n" +
		"    < i2\n" +
		"})"
	require.Equal(t, want, a.String())
}
