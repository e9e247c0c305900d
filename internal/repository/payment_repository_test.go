package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestPaymentRepo_Ledger(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepo()
	require.NoError(t, repo.Append(model.Payment{ID: "PAY5000", ReservationID: "RES1000", Amount: 1000}))
	require.NoError(t, repo.Append(model.Payment{ID: "PAY5001", ReservationID: "RES1001", Amount: 500}))
	require.NoError(t, repo.Append(model.Payment{ID: "PAY5002", ReservationID: "RES1000", Amount: -1000}))

	assert.ErrorIs(t, repo.Append(model.Payment{ID: "pay5000"}), ErrConflict)

	got := repo.ForReservation("res1000")
	require.Len(t, got, 2)
	assert.Equal(t, "PAY5000", got[0].ID)
	assert.Equal(t, "PAY5002", got[1].ID)
	assert.Equal(t, 2, repo.CountForReservation("RES1000"))
	assert.Equal(t, 3, repo.Len())
	assert.Empty(t, repo.ForReservation("RES2000"))

	p, err := repo.Get("pay5001")
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.Amount)

	_, err = repo.Get("PAY9999")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, repo.CheckIndex())
}

func TestPaymentRepo_CheckIndexDetectsDrift(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepo()
	require.NoError(t, repo.Append(model.Payment{ID: "PAY5000", ReservationID: "RES1000"}))
	repo.byReservation["RES1000"] = nil

	assert.Error(t, repo.CheckIndex())
}
