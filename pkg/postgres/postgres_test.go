package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/nav?sslmode=disable", "pgx5://u:p@localhost:5432/nav?sslmode=disable"},
		{"postgresql://u@db/nav", "pgx5://u@db/nav"},
		{"pgx5://u@db/nav", "pgx5://u@db/nav"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MigrationURL(tt.in))
	}
}
