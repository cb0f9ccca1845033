package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Tazos", "tazos"},
		{"accented brand", "Vualá", "vuala"},
		{"accents and dots", "Fonomanía 2.0", "fonomania-20"},
		{"multi word", "Funki Punky: Peores que nunca", "funki-punky-peores-que-nunca"},
		{"enye", "Diseños Clásicos", "disenos-clasicos"},
		{"collapse hyphens", "The  Dog --- 2004", "the-dog-2004"},
		{"trim hyphens", "  ¡Spinners!  ", "spinners"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.input))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("bob-esponja-2005"))
	assert.False(t, IsValidSlug("Bob Esponja"))
	assert.False(t, IsValidSlug(""))
}
