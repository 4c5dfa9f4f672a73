package usecase

import (
	"context"
	"testing"
	"time"

	"goalquest/model"
)

func TestBlueprintCreateValidation(t *testing.T) {
	svc := NewBlueprintsService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		blueprint *model.Blueprint
		wantErr   string
	}{
		{
			name:      "missing name",
			blueprint: &model.Blueprint{Goals: []model.BlueprintGoal{{Title: "x", Type: model.GoalTypeShort, DurationDays: 7}}},
			wantErr:   "blueprint name is required",
		},
		{
			name:      "no goals",
			blueprint: &model.Blueprint{Name: "Empty"},
			wantErr:   "blueprint must contain at least one goal",
		},
		{
			name: "goal without title",
			blueprint: &model.Blueprint{
				Name:  "Bad",
				Goals: []model.BlueprintGoal{{Type: model.GoalTypeShort, DurationDays: 7}},
			},
			wantErr: "blueprint goal title is required",
		},
		{
			name: "invalid goal type",
			blueprint: &model.Blueprint{
				Name:  "Bad",
				Goals: []model.BlueprintGoal{{Title: "x", Type: "eternal", DurationDays: 7}},
			},
			wantErr: "invalid goal type in blueprint",
		},
		{
			name: "non-positive duration",
			blueprint: &model.Blueprint{
				Name:  "Bad",
				Goals: []model.BlueprintGoal{{Title: "x", Type: model.GoalTypeShort, DurationDays: 0}},
			},
			wantErr: "blueprint goal duration must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.blueprint)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuiltinBlueprintsAreProtected(t *testing.T) {
	svc := NewBlueprintsService(nil, nil)

	for _, b := range builtinBlueprints {
		if !isBuiltin(b.BlueprintID) {
			t.Errorf("%s should be recognized as built-in", b.BlueprintID)
		}
		err := svc.Delete(context.Background(), b.BlueprintID, "any-user")
		if err == nil || err.Error() != "built-in blueprints cannot be deleted" {
			t.Errorf("deleting %s: got %v", b.BlueprintID, err)
		}
	}

	if isBuiltin("custom-123") {
		t.Error("user blueprint IDs must not be treated as built-in")
	}
}

func TestBuiltinBlueprintsAreValid(t *testing.T) {
	for _, b := range builtinBlueprints {
		if b.Name == "" {
			t.Errorf("%s has no name", b.BlueprintID)
		}
		if len(b.Goals) == 0 {
			t.Errorf("%s has no goals", b.BlueprintID)
		}
		for _, bg := range b.Goals {
			if bg.Title == "" || !model.ValidGoalType(bg.Type) || bg.DurationDays <= 0 {
				t.Errorf("%s has an invalid goal %+v", b.BlueprintID, bg)
			}
		}
	}
}

func TestBatchHorizon(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	blueprint := &model.Blueprint{
		Goals: []model.BlueprintGoal{
			{Title: "a", Type: model.GoalTypeShort, DurationDays: 14},
			{Title: "b", Type: model.GoalTypeLong, DurationDays: 150},
			{Title: "c", Type: model.GoalTypeMedium, DurationDays: 60},
		},
	}

	got := batchHorizon(blueprint, now)
	want := now.AddDate(0, 0, 150)
	if !got.Equal(want) {
		t.Errorf("horizon = %v, want %v", got, want)
	}
}
