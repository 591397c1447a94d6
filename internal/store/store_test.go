package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/backup"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_AbsentReturnsDefault(t *testing.T) {
	s := openTemp(t)

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSnapshot(), snap)

	raw, err := s.Raw()
	require.NoError(t, err)
	assert.Nil(t, raw, "default is synthesized, not persisted")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTemp(t)

	snap := model.DefaultSnapshot()
	snap.Settings.Theme = "dark"
	snap.Khata.Transactions = []model.Transaction{
		{ID: "t1", Amount: 250, Category: "বাজার", Date: "2024-02-02", Type: model.TypeExpense},
	}
	require.NoError(t, s.Save(snap))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestSave_ReplacesWholeState(t *testing.T) {
	s := openTemp(t)

	first := model.DefaultSnapshot()
	first.Khata.Transactions = []model.Transaction{
		{ID: "t1", Amount: 1, Date: "2024-01-01", Type: model.TypeIncome},
	}
	require.NoError(t, s.Save(first))

	second := model.DefaultSnapshot()
	require.NoError(t, s.Save(second))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Khata.Transactions)
}

func TestRejectedImportLeavesStateUntouched(t *testing.T) {
	// Import validates before anything is written, so a bad backup must leave
	// the persisted bytes byte-identical.
	s := openTemp(t)
	require.NoError(t, s.Save(model.DefaultSnapshot()))

	before, err := s.Raw()
	require.NoError(t, err)

	_, err = backup.Decode([]byte(`{"khata": {"id": "default"}}`))
	require.ErrorIs(t, err, backup.ErrInvalidBackup)

	after, err := s.Raw()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
