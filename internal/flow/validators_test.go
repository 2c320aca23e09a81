package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"two parts", "احمد محمد", false},
		{"three parts", "احمد محمد علي", true},
		{"four parts", "احمد محمد علي حسن", true},
		{"whitespace only", "   ", false},
		{"empty", "", false},
		{"extra whitespace between parts", "  احمد   محمد   علي  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFullName(tt.input))
		})
	}
}

func TestIsAllowedBike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"arabic brand in sentence", "عايز دايون 150", true},
		{"latin brand uppercase", "DAYUN 150", true},
		{"zontes", "زونتيس", true},
		{"keeway alt spelling", "keway", true},
		{"unknown brand", "Honda CBR", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedBike(tt.input))
		})
	}
}

func TestIsSameNumberPhrase(t *testing.T) {
	assert.True(t, IsSameNumberPhrase("نفس الرقم"))
	assert.True(t, IsSameNumberPhrase("  نفسه "))
	assert.True(t, IsSameNumberPhrase("هو"))
	assert.False(t, IsSameNumberPhrase("01001234567"))
}

func TestIsInstallment(t *testing.T) {
	assert.True(t, IsInstallment("قسط"))
	assert.True(t, IsInstallment("عايز تقسيط"))
	assert.False(t, IsInstallment("كاش"))
}
