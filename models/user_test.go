package models

import "testing"

func TestHealthGoalTags(t *testing.T) {
	u := &User{HealthGoals: "build_muscle, strength_training ,,weight_loss"}

	tags := u.HealthGoalTags()
	want := []string{"build_muscle", "strength_training", "weight_loss"}
	if len(tags) != len(want) {
		t.Fatalf("got %d tags, want %d: %v", len(tags), len(want), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, tags[i], want[i])
		}
	}

	if (&User{}).HealthGoalTags() != nil {
		t.Error("empty goal list should yield nil")
	}
}

func TestHasHealthGoal(t *testing.T) {
	u := &User{HealthGoals: "build_muscle"}
	if !u.HasHealthGoal(GoalBuildMuscle) {
		t.Error("expected build_muscle to be set")
	}
	if u.HasHealthGoal(GoalStrengthTraining) {
		t.Error("strength_training should not be set")
	}
}
