package domain

// Exercise is a catalog entry as served by the backend. Difficulty uses the
// server's spelling (BEGINNER, INTERMEDIATE, ADVANCED).
type Exercise struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Difficulty  string `json:"difficulty"`
	Equipment   string `json:"equipment"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
}

// Food is a nutrition catalog entry. Macro values are per 100g.
type Food struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CaloriesPer100g    float64 `json:"caloriesPer100g"`
	ProteinPer100g     float64 `json:"proteinPer100g"`
	CarbsPer100g       float64 `json:"carbsPer100g"`
	FatsPer100g        float64 `json:"fatsPer100g"`
	ServingDescription string  `json:"servingDescription"`
	IsVeg              bool    `json:"isVeg"`
	Description        string  `json:"description"`
}
