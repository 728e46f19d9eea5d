package model_test

import (
	"testing"

	"tanglaw_backend/internal/domain/model"
)

func TestAlias(t *testing.T) {
	if got := model.Alias(7, model.RoleCounselor); got != "Counselor7" {
		t.Errorf("counselor alias = %q, want Counselor7", got)
	}
	if got := model.Alias(3, model.RoleUser); got != "Anonymous3" {
		t.Errorf("user alias = %q, want Anonymous3", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "completed", "cancelled"} {
		if !model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "postponed"} {
		if model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
