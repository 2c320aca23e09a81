package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	t.Run("plain JSON line", func(t *testing.T) {
		result, err := ParseResult(`{"normalized_governorate": "الجيزة", "normalized_district": "الهرم", "is_match": true, "note": "تمام"}`)
		require.NoError(t, err)
		assert.Equal(t, "الجيزة", result.NormalizedGovernorate)
		assert.Equal(t, "الهرم", result.NormalizedDistrict)
		require.NotNil(t, result.IsMatch)
		assert.True(t, *result.IsMatch)
		assert.Equal(t, "تمام", result.Note)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		result, err := ParseResult("```json\n{\"normalized_governorate\": \"القاهرة\", \"normalized_district\": \"شبرا\", \"is_match\": false, \"note\": \"\"}\n```")
		require.NoError(t, err)
		require.NotNil(t, result.IsMatch)
		assert.False(t, *result.IsMatch)
	})

	t.Run("JSON with surrounding prose", func(t *testing.T) {
		result, err := ParseResult("النتيجة:\n{\"normalized_governorate\": \"الجيزة\", \"normalized_district\": \"الهرم\", \"is_match\": true, \"note\": \"\"}\nشكراً")
		require.NoError(t, err)
		assert.Equal(t, "الهرم", result.NormalizedDistrict)
	})

	t.Run("missing verdict stays nil", func(t *testing.T) {
		result, err := ParseResult(`{"normalized_governorate": "الجيزة", "normalized_district": "الهرم"}`)
		require.NoError(t, err)
		assert.Nil(t, result.IsMatch)
	})

	t.Run("no JSON object", func(t *testing.T) {
		_, err := ParseResult("مش عارف أساعدك في ده")
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseResult(`{"normalized_governorate": `)
		assert.Error(t, err)
	})
}
