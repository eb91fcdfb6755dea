package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Deleting a teacher, room, subject or class group must take its
// timeslots with it, so every parent relation carries ON DELETE CASCADE.
func TestTimeslotParentRelationsCascade(t *testing.T) {
	s, err := schema.Parse(&TimeslotModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Teacher", "Room", "Subject", "ClassGroup"} {
		rel, ok := s.Relationships.Relations[name]
		require.True(t, ok, "relation %s missing", name)

		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, "relation %s has no FK constraint", name)
		require.Equal(t, "CASCADE", constraint.OnDelete, "relation %s", name)
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want Weekday
		ok   bool
	}{
		{"Mon", DayMon, true},
		{" Fri ", DayFri, true},
		{"Sat", "", false},
		{"monday", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDay(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
		ok   bool
	}{
		{"1", Unit1, true},
		{"5", Unit5, true},
		{"Unit2", Unit2, true},
		{"Form", UnitForm, true},
		{" 3 ", Unit3, true},
		{"6", "", false},
		{"0", "", false},
		{"Unit6", "", false},
		{"form", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseUnit(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
