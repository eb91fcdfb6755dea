package configs

import (
	"log"
	"strings"
)

/* =======================================================
   Suggestion policy
   Knobs for the scheduling suggestion services. Schools
   differ in which subjects run in lockstep blocks and in
   what their additional-provision subject is called, so
   both can be overridden from the environment.
   ======================================================= */

type SuggestionPolicy struct {
	// Subjects taught simultaneously to every class in a
	// year-half ("blocked" subjects).
	LockstepSubjects []string

	// Sentinel subject that never gets teacher-room
	// prioritization (no dedicated rooms exist for it).
	APSubject string
}

var Suggestion = SuggestionPolicy{
	LockstepSubjects: []string{"Maths", "English", "PE", "PSHE"},
	APSubject:        "AP",
}

func (p SuggestionPolicy) IsLockstep(subject string) bool {
	for _, s := range p.LockstepSubjects {
		if s == subject {
			return true
		}
	}
	return false
}

func loadSuggestionPolicy() {
	if raw := GetEnv("LOCKSTEP_SUBJECTS"); raw != "" {
		parts := []string{}
		for _, p := range strings.Split(raw, ",") {
			if t := strings.TrimSpace(p); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			Suggestion.LockstepSubjects = parts
		}
	}
	if ap := strings.TrimSpace(GetEnv("AP_SUBJECT")); ap != "" {
		Suggestion.APSubject = ap
	}
	log.Printf("[INFO] suggestion policy: lockstep=%v ap=%s", Suggestion.LockstepSubjects, Suggestion.APSubject)
}
