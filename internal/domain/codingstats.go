package domain

// Difficulty classifies a coding-practice problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyBucket holds solved/available counts for one difficulty.
// Percent is the share of the user's total solved problems that fall in
// this bucket (not the share of available problems) and is always in
// [0,1] - exactly 0 when nothing is solved.
type DifficultyBucket struct {
	Difficulty     Difficulty `json:"difficulty"`
	Solved         int        `json:"solved"`
	TotalAvailable int        `json:"total_available"`
	Percent        float64    `json:"percent"`
}

// MonthActivity is the submission count for one calendar month
type MonthActivity struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

// CodingStats is the normalized coding-practice feed
type CodingStats struct {
	TotalSolved     int                `json:"total_solved"`
	TotalAvailable  int                `json:"total_available"`
	Ranking         int                `json:"ranking"`
	AcceptanceRate  float64            `json:"acceptance_rate"`
	Buckets         []DifficultyBucket `json:"buckets"`
	MonthlyActivity []MonthActivity    `json:"monthly_activity"`
}
