package models

import "fmt"

// NutrientVector is the fixed set of nutrient amounts carried by one food-log
// entry, one personal food (per serving), or one daily aggregate. Units are
// fixed per field: kcal for calories, g for macros and fat sub-types, mg/mcg
// for minerals and vitamins. Missing upstream values stay 0.
type NutrientVector struct {
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fat                float64 `json:"fat"`
	Fiber              float64 `json:"fiber"`
	Sugar              float64 `json:"sugar"`
	SaturatedFat       float64 `json:"saturated_fat"`
	TransFat           float64 `json:"trans_fat"`
	MonounsaturatedFat float64 `json:"monounsaturated_fat"`
	PolyunsaturatedFat float64 `json:"polyunsaturated_fat"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`
	Potassium          float64 `json:"potassium"`
	Calcium            float64 `json:"calcium"`
	Iron               float64 `json:"iron"`
	Magnesium          float64 `json:"magnesium"`
	Phosphorus         float64 `json:"phosphorus"`
	Zinc               float64 `json:"zinc"`
	Copper             float64 `json:"copper"`
	Manganese          float64 `json:"manganese"`
	Selenium           float64 `json:"selenium"`
	VitaminA           float64 `json:"vitamin_a"`
	VitaminC           float64 `json:"vitamin_c"`
	VitaminD           float64 `json:"vitamin_d"`
	VitaminE           float64 `json:"vitamin_e"`
	VitaminK           float64 `json:"vitamin_k"`
	Thiamin            float64 `json:"thiamin"`
	Riboflavin         float64 `json:"riboflavin"`
	Niacin             float64 `json:"niacin"`
	VitaminB6          float64 `json:"vitamin_b6"`
	Folate             float64 `json:"folate"`
	VitaminB12         float64 `json:"vitamin_b12"`
	PantothenicAcid    float64 `json:"pantothenic_acid"`
	Choline            float64 `json:"choline"`
	Creatine           float64 `json:"creatine"`
}

// NutrientField names one vector field together with its display unit.
type NutrientField struct {
	Name string
	Unit string
}

// NutrientFields enumerates every vector field in declaration order. This is
// the single source of truth for the field set; Add, Scale, Values and the
// summary endpoints all iterate it instead of repeating per-field code.
var NutrientFields = []NutrientField{
	{"calories", "kcal"},
	{"protein", "g"},
	{"carbs", "g"},
	{"fat", "g"},
	{"fiber", "g"},
	{"sugar", "g"},
	{"saturated_fat", "g"},
	{"trans_fat", "g"},
	{"monounsaturated_fat", "g"},
	{"polyunsaturated_fat", "g"},
	{"cholesterol", "mg"},
	{"sodium", "mg"},
	{"potassium", "mg"},
	{"calcium", "mg"},
	{"iron", "mg"},
	{"magnesium", "mg"},
	{"phosphorus", "mg"},
	{"zinc", "mg"},
	{"copper", "mg"},
	{"manganese", "mg"},
	{"selenium", "mcg"},
	{"vitamin_a", "mcg"},
	{"vitamin_c", "mg"},
	{"vitamin_d", "mcg"},
	{"vitamin_e", "mg"},
	{"vitamin_k", "mcg"},
	{"thiamin", "mg"},
	{"riboflavin", "mg"},
	{"niacin", "mg"},
	{"vitamin_b6", "mg"},
	{"folate", "mcg"},
	{"vitamin_b12", "mcg"},
	{"pantothenic_acid", "mg"},
	{"choline", "mg"},
	{"creatine", "mg"},
}

// fields returns pointers to every amount in declaration order, matching
// NutrientFields index-for-index.
func (v *NutrientVector) fields() []*float64 {
	return []*float64{
		&v.Calories, &v.Protein, &v.Carbs, &v.Fat, &v.Fiber, &v.Sugar,
		&v.SaturatedFat, &v.TransFat, &v.MonounsaturatedFat, &v.PolyunsaturatedFat,
		&v.Cholesterol, &v.Sodium, &v.Potassium, &v.Calcium, &v.Iron,
		&v.Magnesium, &v.Phosphorus, &v.Zinc, &v.Copper, &v.Manganese,
		&v.Selenium, &v.VitaminA, &v.VitaminC, &v.VitaminD, &v.VitaminE,
		&v.VitaminK, &v.Thiamin, &v.Riboflavin, &v.Niacin, &v.VitaminB6,
		&v.Folate, &v.VitaminB12, &v.PantothenicAcid, &v.Choline, &v.Creatine,
	}
}

// Add accumulates other into v field by field.
func (v *NutrientVector) Add(other NutrientVector) {
	dst := v.fields()
	src := other.fields()
	for i := range dst {
		*dst[i] += *src[i]
	}
}

// Scale multiplies every field by factor. Used when a log entry's quantity is
// edited: the whole vector is rescaled by newQty/oldQty in one place instead
// of per-field code that would drift when the field set changes.
func (v *NutrientVector) Scale(factor float64) {
	for _, f := range v.fields() {
		*f *= factor
	}
}

// Scaled returns a scaled copy without mutating v.
func (v NutrientVector) Scaled(factor float64) NutrientVector {
	v.Scale(factor)
	return v
}

// Get returns the amount for a field name from NutrientFields, or 0 for an
// unknown name.
func (v *NutrientVector) Get(name string) float64 {
	for i, f := range NutrientFields {
		if f.Name == name {
			return *v.fields()[i]
		}
	}
	return 0
}

// Set assigns the amount for a field name. Unknown names are ignored so that
// upstream feeds with extra keys do not fail.
func (v *NutrientVector) Set(name string, amount float64) {
	for i, f := range NutrientFields {
		if f.Name == name {
			*v.fields()[i] = amount
			return
		}
	}
}

// Values flattens the vector into a name → amount map for JSON responses.
func (v *NutrientVector) Values() map[string]float64 {
	out := make(map[string]float64, len(NutrientFields))
	ptrs := v.fields()
	for i, f := range NutrientFields {
		out[f.Name] = *ptrs[i]
	}
	return out
}

// Validate rejects vectors with negative amounts. Missing amounts are always
// legal (they stay 0); negative ones are a malformed payload.
func (v *NutrientVector) Validate() error {
	ptrs := v.fields()
	for i, f := range NutrientFields {
		if *ptrs[i] < 0 {
			return fmt.Errorf("nutrient %q must not be negative (got %v)", f.Name, *ptrs[i])
		}
	}
	return nil
}

// edamamKeys maps Edamam/USDA-style nutrient codes onto vector field names.
// Creatine has no upstream code and always starts at 0.
var edamamKeys = map[string]string{
	"ENERC_KCAL": "calories",
	"PROCNT":     "protein",
	"CHOCDF":     "carbs",
	"FAT":        "fat",
	"FIBTG":      "fiber",
	"SUGAR":      "sugar",
	"FASAT":      "saturated_fat",
	"FATRN":      "trans_fat",
	"FAMS":       "monounsaturated_fat",
	"FAPU":       "polyunsaturated_fat",
	"CHOLE":      "cholesterol",
	"NA":         "sodium",
	"K":          "potassium",
	"CA":         "calcium",
	"FE":         "iron",
	"MG":         "magnesium",
	"P":          "phosphorus",
	"ZN":         "zinc",
	"CU":         "copper",
	"MN":         "manganese",
	"SE":         "selenium",
	"VITA_RAE":   "vitamin_a",
	"VITC":       "vitamin_c",
	"VITD":       "vitamin_d",
	"TOCPHA":     "vitamin_e",
	"VITK1":      "vitamin_k",
	"THIA":       "thiamin",
	"RIBF":       "riboflavin",
	"NIA":        "niacin",
	"VITB6A":     "vitamin_b6",
	"FOLDFE":     "folate",
	"VITB12":     "vitamin_b12",
	"PANTAC":     "pantothenic_acid",
	"CHOLN":      "choline",
}

// NutrientVectorFromCodes builds a vector from an Edamam-style code → quantity
// map. Unknown codes are dropped; absent codes leave their field at 0.
func NutrientVectorFromCodes(nutrients map[string]float64) NutrientVector {
	var v NutrientVector
	for code, amount := range nutrients {
		if name, ok := edamamKeys[code]; ok {
			v.Set(name, amount)
		}
	}
	return v
}
