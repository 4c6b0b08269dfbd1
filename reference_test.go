package casref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceGet(t *testing.T) {
	ref := NewReference("cassandra/Tracker", map[string]string{
		"hosts":   " cass1:9042 ",
		"empty":   "",
		"blank":   "   ",
		"cluster": "C",
	})

	v, ok := ref.Get("hosts")
	require.True(t, ok)
	assert.Equal(t, "cass1:9042", v)

	_, ok = ref.Get("empty")
	assert.False(t, ok)
	_, ok = ref.Get("blank")
	assert.False(t, ok)
	_, ok = ref.Get("absent")
	assert.False(t, ok)
}

func TestReferenceSet(t *testing.T) {
	ref := NewReference("r", nil)
	ref.Set("keyspace", "tracker")

	v, ok := ref.Get("keyspace")
	require.True(t, ok)
	assert.Equal(t, "tracker", v)
}

func TestReferenceCopiesAttrs(t *testing.T) {
	attrs := map[string]string{"hosts": "a:9042"}
	ref := NewReference("r", attrs)

	attrs["hosts"] = "changed"

	v, ok := ref.Get("hosts")
	require.True(t, ok)
	assert.Equal(t, "a:9042", v)
}

func TestReferenceMetadata(t *testing.T) {
	ref := NewReference("cassandra/Tracker", nil)
	ref.SetResourceType("casref.Keyspace")
	ref.SetFactoryName("casref.Factory")

	assert.Equal(t, "cassandra/Tracker", ref.Name())
	assert.Equal(t, "casref.Keyspace", ref.ResourceType())
	assert.Equal(t, "casref.Factory", ref.FactoryName())
}

func TestReferenceAttrsFiltersEmpty(t *testing.T) {
	ref := NewReference("r", map[string]string{
		"hosts": "a:9042",
		"blank": "  ",
	})

	attrs := ref.Attrs()
	assert.Equal(t, map[string]string{"hosts": "a:9042"}, attrs)
}
