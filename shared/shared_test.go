package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "false", expected: boolPtr(false)},
		{input: "1", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "T", expected: boolPtr(true)},
		{input: "F", expected: boolPtr(false)},
		{input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "rounds up", total: 101, limit: 10, expected: 11},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Status string `db:"status"`
		Rating int    `db:"rating"`
		Notes  string
	}

	fields := shared.TransformFields(updateRequest{Status: "Confirmed", Notes: "ignored"}, "admin")

	assert.Equal(t, "Confirmed", fields["status"])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])

	// zero values and untagged fields are skipped
	assert.NotContains(t, fields, "rating")
	assert.NotContains(t, fields, "Notes")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc-123", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "abc-123", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("abc-123", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "booking:gets:")

	params.Page = 2
	third := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	assert.NotEqual(t, first, third)
}
