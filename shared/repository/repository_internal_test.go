package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"epsec/shared/failure"

	"github.com/lib/pq"
)

func TestWriteError(t *testing.T) {
	repo := Repository[struct{}]{entity: "booking"}

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "unique violation maps to conflict",
			err:          &pq.Error{Code: "23505", Constraint: "bookings_booking_reference_key"},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "foreign key violation maps to bad request",
			err:          &pq.Error{Code: "23503", Constraint: "bookings_package_id_fkey"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "wrapped unique violation still maps",
			err:          fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}),
			expectedCode: http.StatusConflict,
		},
		{
			name:         "other pq errors pass through as internal",
			err:          &pq.Error{Code: "42P01"},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "non pq errors pass through as internal",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.writeError(tt.err)
			if err == nil {
				t.Fatal("expected an error")
			}

			if code := failure.GetCode(err); code != tt.expectedCode {
				t.Errorf("expected code %d, got %d", tt.expectedCode, code)
			}
		})
	}

	t.Run("passthrough keeps the original error", func(t *testing.T) {
		cause := errors.New("connection reset")

		err := repo.writeError(cause)
		if !errors.Is(err, cause) {
			t.Errorf("expected %v to wrap %v", err, cause)
		}
	})
}
