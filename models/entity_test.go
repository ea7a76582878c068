package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type budget struct {
	Title  string   `json:"title"`
	Amount int      `json:"amount"`
	Tags   []string `json:"tags,omitempty"`
}

func TestFieldsOf_Decode_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		value  budget
		fields Fields
	}{
		{
			name:   "all fields",
			value:  budget{Title: "Rent", Amount: 1200, Tags: []string{"home"}},
			fields: Fields{"title": "Rent", "amount": float64(1200), "tags": []any{"home"}},
		},
		{
			name:   "omitted tags",
			value:  budget{Title: "Food"},
			fields: Fields{"title": "Food", "amount": float64(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := FieldsOf(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.fields, fields)

			e := Entity{ID: "b1", Type: "budgets", Fields: fields, UpdatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
			typed, err := Decode[budget](e)
			require.NoError(t, err)
			assert.Equal(t, tt.value, typed.Data)
			assert.Equal(t, e, typed.Entity)
		})
	}
}

func TestFieldsOf_NotAnObject(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "Rent"},
		{name: "number", value: 42},
		{name: "slice", value: []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FieldsOf(tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "payload is not a JSON object")
		})
	}
}

func TestFieldsOf_Unencodable(t *testing.T) {
	_, err := FieldsOf(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal payload")
}

func TestDecode_WrongShape(t *testing.T) {
	_, err := Decode[budget](Entity{ID: "b1", Type: "budgets", Fields: Fields{"title": 42}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode fields of budgets/b1")
}
