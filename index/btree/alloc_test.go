package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaReserveAndRelease(t *testing.T) {
	quota := NewQuota(3)
	require.NoError(t, quota.Reserve(2))
	assert.Equal(t, 2, quota.InUse())
	err := quota.Reserve(2)
	require.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 2, quota.InUse(), "refused reservation must not count")
	require.NoError(t, quota.Reserve(1))
	quota.Release(3)
	assert.Equal(t, 0, quota.InUse())
}

func TestQuotaOverRelease(t *testing.T) {
	quota := NewQuota(3)
	require.NoError(t, quota.Reserve(1))
	assert.Panics(t, func() { quota.Release(2) })
}

func TestQuotaLowerLimit(t *testing.T) {
	quota := NewQuota(5)
	require.NoError(t, quota.Reserve(4))
	quota.SetLimit(2)
	assert.Equal(t, 4, quota.InUse())
	assert.ErrorIs(t, quota.Reserve(1), ErrAllocation)
	quota.Release(3)
	assert.NoError(t, quota.Reserve(1))
}

func TestQuotaSharedBetweenTrees(t *testing.T) {
	quota := NewQuota(4)
	t1 := newTree(t, quota, 1, 2, 3, 4) // root + two leaves
	_, err := New(WithAllocator(quota))
	require.NoError(t, err)
	assert.Equal(t, 4, quota.InUse())
	_, err = New(WithAllocator(quota))
	assert.ErrorIs(t, err, ErrAllocation)
	t1.Destroy()
	assert.Equal(t, 1, quota.InUse())
}

type failingAllocator struct{}

func (failingAllocator) Reserve(int) error { return assert.AnError }
func (failingAllocator) Release(int)       {}

func TestForeignAllocatorErrorIsWrapped(t *testing.T) {
	_, err := New(WithAllocator(failingAllocator{}))
	require.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHeapNeverFails(t *testing.T) {
	assert.NoError(t, heap{}.Reserve(1<<20))
}
