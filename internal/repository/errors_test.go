package repository

import (
	"errors"
	"testing"

	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, "ctx"))

	err := translateError(gorm.ErrRecordNotFound, "ctx")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	pgErr := &pgconn.PgError{Code: pgUniqueViolation}
	err = translateError(pgErr, "ctx")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
	assert.True(t, apperrors.IsDuplicateKey(err))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDuplicateKey, appErr.Code)

	err = translateError(errors.New(`ERROR: duplicate key value violates unique constraint "assignement_pkey"`), "ctx")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

	plain := errors.New("connection reset")
	err = translateError(plain, "failed to list sensors")
	assert.ErrorIs(t, err, plain)
	assert.Contains(t, err.Error(), "failed to list sensors")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeStorage, appErr.Code)
}
