package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_taken")

	assert.True(t, IsBusiness(err, "slot_taken"))
	assert.False(t, IsBusiness(err, "slot_in_past"))
	assert.False(t, IsBusiness(errors.New("slot_taken"), "slot_taken"))
	assert.False(t, IsBusiness(nil, "slot_taken"))

	// wrapped errors still match
	wrapped := fmt.Errorf("creating booking: %w", err)
	assert.True(t, IsBusiness(wrapped, "slot_taken"))
}

func TestIsUniqueConflict(t *testing.T) {
	assert.True(t, IsUniqueConflict(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueConflict(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, IsUniqueConflict(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueConflict(errors.New("duplicate key")))
	assert.False(t, IsUniqueConflict(nil))

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueConflict(wrapped))
}
