//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseSettings_Validate(t *testing.T) {
	const serverDSN = "host=localhost port=5432 user=maria password=secret sslmode=disable"

	tests := []struct {
		name     string
		settings DatabaseSettings
		wantErr  string
	}{
		{"postgres with database name", DatabaseSettings{Type: PostgresDbType, DSN: serverDSN, Name: "maria_faz"}, ""},
		{"sqlite file", DatabaseSettings{Type: SqliteDbType, DSN: "maria-faz.db"}, ""},
		{"sqlite in memory", DatabaseSettings{Type: SqliteDbType, DSN: ":memory:"}, ""},
		{"postgres needs a name", DatabaseSettings{Type: PostgresDbType, DSN: serverDSN}, "database name is required"},
		{"type is required", DatabaseSettings{DSN: serverDSN, Name: "maria_faz"}, "Type"},
		{"mysql is not supported", DatabaseSettings{Type: "mysql", DSN: "maria@tcp(localhost:3306)/maria_faz"}, "Type"},
		{"dsn is required", DatabaseSettings{Type: SqliteDbType}, "DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
