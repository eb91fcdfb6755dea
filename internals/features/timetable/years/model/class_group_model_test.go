package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYearHalf(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"7B2", "7B"},
		{"7B1", "7B"},
		{"10A3", "10"},
		{" 8C1 ", "8C"},
		{"7", "7"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, YearHalf(tc.code), "code %q", tc.code)
	}
}

func TestYearGroupNameFor(t *testing.T) {
	require.Equal(t, "Yr7", YearGroupNameFor(7))
	require.Equal(t, "Yr11", YearGroupNameFor(11))
}
