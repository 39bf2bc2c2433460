package repository

import (
	"errors"
	"strings"

	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateError maps driver-level failures onto the package error taxonomy:
// missing rows become ErrNotFound, uniqueness violations become an AppError
// wrapping ErrDuplicateKey, everything else an AppError wrapping the cause.
func translateError(err error, context string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.NewAppError(apperrors.CodeDuplicateKey, context, apperrors.ErrDuplicateKey)
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return apperrors.NewAppError(apperrors.CodeDuplicateKey, context, apperrors.ErrDuplicateKey)
	}

	return apperrors.NewAppError(apperrors.CodeStorage, context, err)
}
