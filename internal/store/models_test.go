package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualipharm/qualipharm/schema"
)

func TestRecordRowRoundTrip(t *testing.T) {
	rec := &schema.FilledRecord{
		ID:           "rt-001",
		TemplateID:   "incident-register",
		PharmacyName: "Pharmacie Centrale Ville",
		Data: map[string]string{
			"incidentDate": "2025-03-12",
			"description":  "Température hors plage",
		},
		CreatedAt: time.Date(2025, 3, 12, 8, 30, 0, 0, time.UTC),
		Signatures: &schema.SignatureSet{
			Recorder: &schema.SignatureEntry{Name: "A. Martin", Date: "12/03/2025"},
		},
	}

	row, err := toRow(rec)
	require.NoError(t, err)
	assert.Equal(t, "rt-001", row.ID)
	assert.Equal(t, "incident-register", row.TemplateID)

	back, err := fromRow(row)
	require.NoError(t, err)
	assert.Equal(t, rec.Data, back.Data)
	require.NotNil(t, back.Signatures)
	assert.Equal(t, "A. Martin", back.Signatures.Recorder.Name)
}

func TestRecordRowNoSignatures(t *testing.T) {
	rec := &schema.FilledRecord{
		ID:         "rt-002",
		TemplateID: "waste-log",
		Data:       map[string]string{},
		CreatedAt:  time.Now().UTC(),
	}

	row, err := toRow(rec)
	require.NoError(t, err)
	assert.Empty(t, row.Signatures)

	back, err := fromRow(row)
	require.NoError(t, err)
	assert.Nil(t, back.Signatures)
}
