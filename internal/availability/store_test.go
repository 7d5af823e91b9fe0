package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ToggleIsIdempotentPair(t *testing.T) {
	store := NewStore()

	assert.False(t, store.IsUnavailable("doc1", "2025-08-20"))

	assert.True(t, store.Toggle("doc1", "2025-08-20"))
	assert.True(t, store.IsUnavailable("doc1", "2025-08-20"))

	assert.False(t, store.Toggle("doc1", "2025-08-20"))
	assert.False(t, store.IsUnavailable("doc1", "2025-08-20"))
}

func TestStore_PerDoctorIsolation(t *testing.T) {
	store := NewStore()

	store.Toggle("doc1", "2025-08-20")

	assert.True(t, store.IsUnavailable("doc1", "2025-08-20"))
	assert.False(t, store.IsUnavailable("doc2", "2025-08-20"))
	assert.Empty(t, store.List("doc2"))
}

func TestStore_ListSortedAndNormalized(t *testing.T) {
	store := NewStore()

	store.Toggle("doc1", "2025-08-25T00:00:00.000Z")
	store.Toggle("doc1", "2025-08-20")
	store.Toggle("doc1", "2025-08-22")

	assert.Equal(t, []string{"2025-08-20", "2025-08-22", "2025-08-25"}, store.List("doc1"))
	assert.True(t, store.IsUnavailable("doc1", "2025-08-25"))
}

func TestStore_DatesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Toggle("doc1", "2025-08-20")

	dates := store.Dates("doc1")
	delete(dates, "2025-08-20")

	assert.True(t, store.IsUnavailable("doc1", "2025-08-20"))
}
