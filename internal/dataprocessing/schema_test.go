package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHeaders(t *testing.T) {
	t.Run("exact headers", func(t *testing.T) {
		header := []string{
			"Complaint ID", "Date received", "Product", "Consumer complaint narrative",
			"Tags", "Consumer disputed?",
		}

		columns, missing := matchHeaders(header)

		assert.Empty(t, missing)
		assert.Equal(t, 0, columns[FieldComplaintID])
		assert.Equal(t, 1, columns[FieldDateReceived])
		assert.Equal(t, 3, columns[FieldNarrative])
		assert.Equal(t, 5, columns[FieldDisputed])
	})

	t.Run("case insensitive and shuffled", func(t *testing.T) {
		header := []string{
			"consumer disputed?", " COMPLAINT ID ", "tags", "DATE RECEIVED",
		}

		columns, missing := matchHeaders(header)

		assert.Empty(t, missing)
		assert.Equal(t, 1, columns[FieldComplaintID])
		assert.Equal(t, 0, columns[FieldDisputed])
		assert.Equal(t, 2, columns[FieldTags])
		assert.Equal(t, 3, columns[FieldDateReceived])
	})

	t.Run("missing required columns reported", func(t *testing.T) {
		header := []string{"Product", "Tags"}

		columns, missing := matchHeaders(header)

		require.Len(t, missing, 2)
		assert.Contains(t, missing, "Complaint ID")
		assert.Contains(t, missing, "Consumer disputed?")
		assert.NotContains(t, columns, FieldComplaintID)
	})

	t.Run("optional columns may be absent", func(t *testing.T) {
		header := []string{"Complaint ID", "Consumer disputed?"}

		columns, missing := matchHeaders(header)

		assert.Empty(t, missing)
		assert.Len(t, columns, 2)
	})
}

func TestRawRecord_Get(t *testing.T) {
	rec := RawRecord{Row: 2, Fields: map[string]string{FieldProduct: "Mortgage"}}

	assert.Equal(t, "Mortgage", rec.Get(FieldProduct))
	assert.Equal(t, "", rec.Get(FieldIssue))
}
