package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotNamesSortedAndSelfNaming(t *testing.T) {
	snap := NewSnapshot(map[string]VendorRecord{
		"Zeta Corp": {},
		"Acme":      {AdminContact: "Dana"},
		"Mid South": {},
	})

	assert.Equal(t, []string{"Acme", "Mid South", "Zeta Corp"}, snap.Names())
	assert.Equal(t, 3, snap.Len())

	rec, ok := snap.Lookup("Acme")
	require.True(t, ok)
	// the map key becomes the record's Name even when the value left it blank
	assert.Equal(t, "Acme", rec.Name)
	assert.Equal(t, "Dana", rec.AdminContact)

	_, ok = snap.Lookup("acme")
	assert.False(t, ok, "lookup is exact")
}

func TestHolderSwapPublishesNewSnapshot(t *testing.T) {
	first := NewSnapshot(map[string]VendorRecord{"Old Vendor": {}})
	h := NewHolder(first)
	assert.Same(t, first, h.Load())

	second := NewSnapshot(map[string]VendorRecord{"New Vendor": {}, "Other": {}})
	h.Swap(second)

	got := h.Load()
	assert.Same(t, second, got)
	assert.Equal(t, []string{"New Vendor", "Other"}, got.Names())
	// the old snapshot is untouched for readers that still hold it
	assert.Equal(t, []string{"Old Vendor"}, first.Names())
}
