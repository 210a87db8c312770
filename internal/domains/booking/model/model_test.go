package model_test

import (
	"regexp"
	"strings"
	"testing"

	"epsec/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestNewReference(t *testing.T) {
	pattern := regexp.MustCompile(`^ETH-[0-9A-Z]+-[0-9A-Z]{4}$`)

	reference := model.NewReference()

	assert.True(t, pattern.MatchString(reference), "unexpected reference format: %s", reference)
	assert.True(t, strings.HasPrefix(reference, "ETH-"))
}

func TestNewReference_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for range 10000 {
		reference := model.NewReference()

		assert.False(t, seen[reference], "duplicate reference generated: %s", reference)
		seen[reference] = true
	}
}

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		name     string
		status   model.Status
		expected bool
	}{
		{name: "pending", status: model.StatusPending, expected: true},
		{name: "confirmed", status: model.StatusConfirmed, expected: true},
		{name: "cancelled", status: model.StatusCancelled, expected: true},
		{name: "unknown", status: model.Status("shipped"), expected: false},
		{name: "empty", status: model.Status(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Valid())
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     model.Status
		to       model.Status
		expected bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, expected: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, expected: true},
		{name: "pending to pending", from: model.StatusPending, to: model.StatusPending, expected: false},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, expected: false},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, expected: false},
		{name: "cancelled to confirmed", from: model.StatusCancelled, to: model.StatusConfirmed, expected: false},
		{name: "cancelled to pending", from: model.StatusCancelled, to: model.StatusPending, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}
