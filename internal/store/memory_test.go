package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalbiznex/biznexbot/internal/models"
)

func TestMemoryStoreAppendAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()

	for want := 1; want <= 3; want++ {
		id, err := s.Append(models.ContentItem{Idea: "x", Platforms: "FB"})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	rows, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Item.ContentID)
		assert.Equal(t, uint(i+1), row.Key)
		assert.Equal(t, models.StatusPending, row.Item.Status)
	}
}

func TestMemoryStoreAppendUsesMaxPlusOne(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Append(models.ContentItem{Idea: "x", Platforms: "FB", ContentID: 41})
	require.NoError(t, err)

	// ContentID is store-assigned; the caller's value is ignored
	rows, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].Item.ContentID)

	id, err := s.Append(models.ContentItem{Idea: "y", Platforms: "IG"})
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestMemoryStoreUpdateField(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Append(models.ContentItem{Idea: "x", Platforms: "FB"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateField(1, "status", models.StatusPosted))
	require.NoError(t, s.UpdateField(1, "caption", "edited"))

	rows, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPosted, rows[0].Item.Status)
	assert.Equal(t, "edited", rows[0].Item.Caption)

	assert.Error(t, s.UpdateField(1, "bogus", "v"))
	assert.Error(t, s.UpdateField(99, "status", models.StatusPosted))
}

func TestMemoryStoreReadAllReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Append(models.ContentItem{Idea: "x", Platforms: "FB"})
	require.NoError(t, err)

	rows, err := s.ReadAll()
	require.NoError(t, err)
	rows[0].Item.Status = "mutated"

	again, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again[0].Item.Status)
}

func TestMemoryStorePostLogNewestFirst(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.AppendPostLog(models.PostLogEntry{ContentID: 1, Platform: "FB"}))
	require.NoError(t, s.AppendPostLog(models.PostLogEntry{ContentID: 1, Platform: "IG"}))
	require.NoError(t, s.AppendPostLog(models.PostLogEntry{ContentID: 2, Platform: "LinkedIn"}))

	log, err := s.PostLog()
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "LinkedIn", log[0].Platform)
	assert.Equal(t, "IG", log[1].Platform)
	assert.Equal(t, "FB", log[2].Platform)
}
