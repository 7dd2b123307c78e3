package models

import (
	"strings"
	"testing"
)

func TestNutrientFieldsMatchVector(t *testing.T) {
	var v NutrientVector
	if got, want := len(v.fields()), len(NutrientFields); got != want {
		t.Fatalf("fields() returns %d pointers for %d declared fields", got, want)
	}

	seen := map[string]bool{}
	for _, f := range NutrientFields {
		if seen[f.Name] {
			t.Errorf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = true
		if f.Unit == "" {
			t.Errorf("field %q has no unit", f.Name)
		}
	}
}

func TestAdd(t *testing.T) {
	var a, b NutrientVector
	a.Calories, a.Protein, a.Sodium = 300, 12, 150
	b.Calories, b.Protein, b.Iron = 450, 30, 2

	a.Add(b)

	if a.Calories != 750 || a.Protein != 42 || a.Sodium != 150 || a.Iron != 2 {
		t.Errorf("Add produced %+v", a)
	}
}

func TestScale(t *testing.T) {
	var v NutrientVector
	v.Calories, v.Fat, v.VitaminC = 200, 10, 30

	v.Scale(1.5)

	if v.Calories != 300 || v.Fat != 15 || v.VitaminC != 45 {
		t.Errorf("Scale produced %+v", v)
	}
	if v.Protein != 0 {
		t.Errorf("zero field scaled to %v", v.Protein)
	}
}

func TestScaledDoesNotMutate(t *testing.T) {
	var v NutrientVector
	v.Calories = 100

	doubled := v.Scaled(2)

	if doubled.Calories != 200 {
		t.Errorf("Scaled copy = %v, want 200", doubled.Calories)
	}
	if v.Calories != 100 {
		t.Errorf("Scaled mutated the receiver: %v", v.Calories)
	}
}

func TestGetSet(t *testing.T) {
	var v NutrientVector

	v.Set("magnesium", 120)
	if v.Magnesium != 120 {
		t.Errorf("Set wrote %v", v.Magnesium)
	}
	if got := v.Get("magnesium"); got != 120 {
		t.Errorf("Get = %v, want 120", got)
	}

	if got := v.Get("unobtainium"); got != 0 {
		t.Errorf("unknown name Get = %v, want 0", got)
	}
	v.Set("unobtainium", 5) // ignored
	if v != (NutrientVector{Magnesium: 120}) {
		t.Errorf("unknown name Set changed the vector: %+v", v)
	}
}

func TestValues(t *testing.T) {
	var v NutrientVector
	v.Calories, v.Creatine = 1800, 3000

	values := v.Values()
	if len(values) != len(NutrientFields) {
		t.Fatalf("Values has %d keys, want %d", len(values), len(NutrientFields))
	}
	if values["calories"] != 1800 || values["creatine"] != 3000 || values["zinc"] != 0 {
		t.Errorf("Values = calories %v creatine %v zinc %v", values["calories"], values["creatine"], values["zinc"])
	}
}

func TestValidate(t *testing.T) {
	var v NutrientVector
	if err := v.Validate(); err != nil {
		t.Errorf("zero vector should be valid: %v", err)
	}

	v.Sodium = -1
	err := v.Validate()
	if err == nil {
		t.Fatal("negative sodium should be rejected")
	}
	if !strings.Contains(err.Error(), "sodium") {
		t.Errorf("error should name the offending field: %v", err)
	}
}

func TestNutrientVectorFromCodes(t *testing.T) {
	v := NutrientVectorFromCodes(map[string]float64{
		"ENERC_KCAL": 250,
		"PROCNT":     18,
		"VITA_RAE":   120,
		"FOLDFE":     80,
		"BOGUS":      999, // unknown codes are dropped
	})

	if v.Calories != 250 || v.Protein != 18 || v.VitaminA != 120 || v.Folate != 80 {
		t.Errorf("mapped vector = %+v", v)
	}
	if v.Creatine != 0 {
		t.Errorf("creatine has no upstream code, got %v", v.Creatine)
	}

	sum := 0.0
	for _, amount := range v.Values() {
		sum += amount
	}
	if sum != 250+18+120+80 {
		t.Errorf("unknown code leaked into the vector (field sum %v)", sum)
	}
}

func TestValidMealType(t *testing.T) {
	for _, meal := range []string{MealBreakfast, MealLunch, MealDinner, MealSnacks} {
		if !ValidMealType(meal) {
			t.Errorf("ValidMealType(%q) = false", meal)
		}
	}
	if ValidMealType("brunch") {
		t.Error("ValidMealType accepted an unknown slot")
	}
}
