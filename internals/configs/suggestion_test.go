package configs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLockstep(t *testing.T) {
	p := SuggestionPolicy{LockstepSubjects: []string{"Maths", "English", "PE", "PSHE"}}

	require.True(t, p.IsLockstep("Maths"))
	require.True(t, p.IsLockstep("PSHE"))
	require.False(t, p.IsLockstep("History"))
	require.False(t, p.IsLockstep("maths"))
	require.False(t, p.IsLockstep(""))
}

func TestLoadSuggestionPolicyOverrides(t *testing.T) {
	t.Setenv("LOCKSTEP_SUBJECTS", "Maths, Music ,")
	t.Setenv("AP_SUBJECT", "Support")

	defer func(prev SuggestionPolicy) { Suggestion = prev }(Suggestion)

	loadSuggestionPolicy()
	require.Equal(t, []string{"Maths", "Music"}, Suggestion.LockstepSubjects)
	require.Equal(t, "Support", Suggestion.APSubject)
}
