package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ForeignKeyViolation},
		{"check", pgError(pgerrcode.CheckViolation), CheckViolation},
		{"invalid text", pgError(pgerrcode.InvalidTextRepresentation), InvalidTextRepresentation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"unknown code", pgError(pgerrcode.DeadlockDetected), Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostgresError(t *testing.T) {
	if got := postgresError(pgError(pgerrcode.CheckViolation)); got != pgerrcode.CheckViolation {
		t.Errorf("expected %s, got %q", pgerrcode.CheckViolation, got)
	}
	if got := postgresError(errors.New("boom")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
}
