package model_test

import (
	"epsec/shared/model"
	"reflect"
	"testing"
)

func TestStringListValue(t *testing.T) {
	tests := []struct {
		name     string
		list     model.StringList
		expected string
	}{
		{
			name:     "nil list",
			list:     nil,
			expected: "[]",
		},
		{
			name:     "empty list",
			list:     model.StringList{},
			expected: "[]",
		},
		{
			name:     "single element",
			list:     model.StringList{"hiking"},
			expected: `["hiking"]`,
		},
		{
			name:     "multiple elements",
			list:     model.StringList{"hiking", "rafting"},
			expected: `["hiking","rafting"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.list.Value()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if value != tt.expected {
				t.Errorf("expected %s, got %v", tt.expected, value)
			}
		})
	}
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name        string
		src         any
		expected    model.StringList
		expectError bool
	}{
		{
			name:     "nil source",
			src:      nil,
			expected: nil,
		},
		{
			name:     "empty bytes",
			src:      []byte{},
			expected: nil,
		},
		{
			name:     "json bytes",
			src:      []byte(`["hiking","rafting"]`),
			expected: model.StringList{"hiking", "rafting"},
		},
		{
			name:     "json string",
			src:      `["hiking"]`,
			expected: model.StringList{"hiking"},
		},
		{
			name:        "unsupported type",
			src:         42,
			expectError: true,
		},
		{
			name:        "malformed json",
			src:         "not-json",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list model.StringList
			err := list.Scan(tt.src)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !reflect.DeepEqual(list, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, list)
			}
		})
	}
}

func TestStringListRoundTrip(t *testing.T) {
	original := model.StringList{"hiking", "rafting", "camel trek"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var restored model.StringList
	if err := restored.Scan(value); err != nil {
		t.Fatalf("failed to scan: %v", err)
	}

	if !reflect.DeepEqual(original, restored) {
		t.Errorf("expected %v, got %v", original, restored)
	}
}
