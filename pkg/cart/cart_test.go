package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(c Cart) (ids []int64, qtys []int) {
	for id, q := range c.Snapshot() {
		ids = append(ids, id)
		qtys = append(qtys, q)
	}
	return ids, qtys
}

func TestAdd(t *testing.T) {
	var c Cart
	c.Add(3)
	c.Add(1)
	c.Add(3)

	assert.Equal(t, 2, c.Quantity(3))
	assert.Equal(t, 1, c.Quantity(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Count())
}

func TestSetRemovesNonPositive(t *testing.T) {
	c := Cart{}
	c.Set(1, 4)
	c.Set(2, 1)
	c.Set(2, 0)
	c.Set(3, -5)

	assert.Equal(t, Cart{1: 4}, c)
	for _, q := range c {
		assert.Positive(t, q)
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := Cart{1: 1, 2: 2}
	c.Remove(99)
	assert.Equal(t, 2, c.Len())

	c.Remove(1)
	assert.Equal(t, Cart{2: 2}, c)

	c.Clear()
	assert.Zero(t, c.Len())

	var empty Cart
	empty.Remove(1)
	empty.Clear()
	assert.Zero(t, empty.Count())
}

func TestSnapshotOrderedAndRestartable(t *testing.T) {
	c := Cart{5: 1, 2: 3, 9: 2}
	snap := c.Snapshot()

	var first []int64
	for id := range snap {
		first = append(first, id)
	}
	require.Equal(t, []int64{2, 5, 9}, first)

	c.Add(1)
	c.Remove(9)

	var second []int64
	for id := range snap {
		second = append(second, id)
	}
	assert.Equal(t, first, second, "snapshot must not see later mutations")

	ids, qtys := collect(c)
	assert.Equal(t, []int64{1, 2, 5}, ids)
	assert.Equal(t, []int{1, 3, 1}, qtys)
}

func TestSnapshotEarlyStop(t *testing.T) {
	c := Cart{1: 1, 2: 1, 3: 1}
	n := 0
	for range c.Snapshot() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestQuantitiesIsACopy(t *testing.T) {
	c := Cart{1: 2}
	q := c.Quantities()
	q[1] = 100
	q[7] = 1
	assert.Equal(t, Cart{1: 2}, c)
}
