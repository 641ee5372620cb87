package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
		wantMsg  string
	}{
		{
			name: "foreign key",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "cards",
				ConstraintName: "cards_rarity_id_fkey",
				Detail:         `Key (rarity_id)=(99) is not present in table "rarities".`,
			},
			wantCode: ForeignKeyViolation,
			wantMsg:  `referenced record does not exist: Key (rarity_id)=(99) is not present in table "rarities"`,
		},
		{
			name: "foreign key still referenced",
			err: &pgconn.PgError{
				Code:           "23503",
				Message:        `update or delete on table "rarities" violates foreign key constraint "cards_rarity_id_fkey" on table "cards"`,
				TableName:      "cards",
				ConstraintName: "cards_rarity_id_fkey",
				Detail:         `Key (id)=(4) is still referenced from table "cards".`,
			},
			wantCode: ForeignKeyInUse,
			wantMsg:  `record is still referenced: Key (id)=(4) is still referenced from table "cards"`,
		},
		{
			name:     "still referenced detail only",
			err:      &pgconn.PgError{Code: "23503", Detail: `Key (id)=(4) is still referenced from table "cards".`},
			wantCode: ForeignKeyInUse,
			wantMsg:  `record is still referenced: Key (id)=(4) is still referenced from table "cards"`,
		},
		{
			name: "unique wrapped",
			err: fmt.Errorf("insert: %w", &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_username_key",
				Detail:         "Key (username)=(ash) already exists.",
			}),
			wantCode: UniqueViolation,
			wantMsg:  "record already exists: Key (username)=(ash) already exists",
		},
		{
			name:     "check without detail",
			err:      &pgconn.PgError{Code: "23514", ColumnName: "offering_quantity"},
			wantCode: CheckViolation,
			wantMsg:  "value is out of the allowed range: offering_quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := Convert(tt.err)

			var sqlErr *Error
			require.True(t, errors.As(converted, &sqlErr))
			assert.Equal(t, tt.wantCode, sqlErr.Code)
			assert.Equal(t, tt.wantCode, ErrCode(converted))
			assert.Equal(t, tt.wantMsg, converted.Error())

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(converted, &pgErr), "driver error must stay reachable")
		})
	}
}

func TestConvert_PassThrough(t *testing.T) {
	assert.NoError(t, Convert(nil))
	assert.Equal(t, sql.ErrNoRows, Convert(sql.ErrNoRows))

	syntaxErr := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	assert.Equal(t, error(syntaxErr), Convert(syntaxErr))
	assert.Equal(t, Other, ErrCode(syntaxErr))
}
