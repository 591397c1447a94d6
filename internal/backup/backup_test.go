package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func TestDecode_Valid(t *testing.T) {
	data := []byte(`{
		"settings": {"language":"en","theme":"dark","themeColor":"rose","reminderEnabled":true,"reminderTime":"08:30"},
		"khata": {"id":"default","name":"My Khata",
			"transactions":[{"id":"t1","amount":1000,"category":"Salary","date":"2024-01-01","note":"","type":"INCOME"}],
			"loans":[{"id":"l1","person":"Karim","amount":500,"date":"2024-01-03","dueDate":"","reason":"","status":"PENDING","type":"GIVEN"}],
			"notes":[],"categories":[]}
	}`)

	snap, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "en", snap.Settings.Language)
	assert.Len(t, snap.Khata.Transactions, 1)
	require.Len(t, snap.Khata.Loans, 1)
	assert.NotNil(t, snap.Khata.Loans[0].Payments, "missing payments array normalizes to empty")
}

func TestDecode_MissingSettingsFails(t *testing.T) {
	_, err := Decode([]byte(`{"khata": {"id":"default"}}`))
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestDecode_MissingKhataFails(t *testing.T) {
	_, err := Decode([]byte(`{"settings": {"language":"bn"}}`))
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestDecode_GarbageFails(t *testing.T) {
	_, err := Decode([]byte(`not json at all`))
	assert.ErrorIs(t, err, ErrInvalidBackup)

	_, err = Decode([]byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestDecode_ToleratesMissingSubArrays(t *testing.T) {
	snap, err := Decode([]byte(`{"settings":{"language":"bn"},"khata":{"id":"default","name":"My Khata"}}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Khata.Transactions)
	assert.NotNil(t, snap.Khata.Transactions)
	assert.NotNil(t, snap.Khata.Categories)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Khata.Transactions = []model.Transaction{
		{ID: "t1", Amount: 12.5, Category: "খাবার", Date: "2024-01-01", Type: model.TypeExpense},
	}

	data, err := Encode(snap)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestExportName(t *testing.T) {
	now := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "khata-backup-2024-03-09.json", ExportName(now))
}
