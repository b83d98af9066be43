package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/billing-client/internal/models"
)

func sample() []models.Client {
	return []models.Client{
		{ID: "1", CompanyName: "Acme"},
		{ID: "2", CompanyName: "Globex"},
	}
}

func TestReplaceAllKeepsServerOrder(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)

	r.ReplaceAll(nil)
	assert.Zero(t, r.Len())
}

func TestAppend(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())
	r.Append(models.Client{ID: "3", CompanyName: "Initech"})

	require.Equal(t, 3, r.Len())
	assert.Equal(t, "3", r.All()[2].ID)
}

func TestReplaceByID(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())

	ok := r.ReplaceByID(models.Client{ID: "2", CompanyName: "Globex Corp"})
	require.True(t, ok)
	got, found := r.Get("2")
	require.True(t, found)
	assert.Equal(t, "Globex Corp", got.CompanyName)

	assert.False(t, r.ReplaceByID(models.Client{ID: "nope"}))
}

func TestRemoveByID(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())

	require.True(t, r.RemoveByID("1"))
	assert.Equal(t, 1, r.Len())
	_, found := r.Get("1")
	assert.False(t, found)

	assert.False(t, r.RemoveByID("1"))
}

func TestToggleExpanded(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())

	r.ToggleExpanded("1")
	got, _ := r.Get("1")
	assert.True(t, got.Expanded)

	r.ToggleExpanded("1")
	got, _ = r.Get("1")
	assert.False(t, got.Expanded)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	r := New()

	var calls [][]models.Client
	cancel := r.Subscribe(func(snapshot []models.Client) {
		calls = append(calls, snapshot)
	})

	r.ReplaceAll(sample())
	r.Append(models.Client{ID: "3"})
	require.Len(t, calls, 2)
	assert.Len(t, calls[0], 2)
	assert.Len(t, calls[1], 3)

	// A failed in-place replace mutates nothing and notifies nobody.
	r.ReplaceByID(models.Client{ID: "nope"})
	assert.Len(t, calls, 2)

	cancel()
	r.Append(models.Client{ID: "4"})
	assert.Len(t, calls, 2)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	r := New()
	r.ReplaceAll(sample())

	all := r.All()
	all[0].CompanyName = "mutated"

	got, _ := r.Get("1")
	assert.Equal(t, "Acme", got.CompanyName)
}
