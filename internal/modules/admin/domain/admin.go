package domain

// DashboardStats are the content and usage totals shown on the admin
// dashboard.
type DashboardStats struct {
	TotalUsers             int64            `json:"totalUsers"`
	TotalExercises         int64            `json:"totalExercises"`
	TotalFoodItems         int64            `json:"totalFoodItems"`
	TotalPlans             int64            `json:"totalPlans"`
	TotalCompletions       int64            `json:"totalCompletions"`
	ExercisesByMuscleGroup map[string]int64 `json:"exercisesByMuscleGroup"`
}

// Engagement reports how many registered users actually train.
// EngagementRate is a percentage.
type Engagement struct {
	TotalUsers     int64   `json:"totalUsers"`
	UsersWithPlans int64   `json:"usersWithPlans"`
	ActiveUsers    int64   `json:"activeUsers"`
	EngagementRate float64 `json:"engagementRate"`
}

type PopularExercise struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// User is the account row as seen by an administrator. Role uses the
// server's bare spelling (USER, ADMIN).
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// RAGStatus mirrors the indexing service's health report. Field names are
// the service's own snake_case.
type RAGStatus struct {
	Status        string `json:"status"`
	VectorCount   int64  `json:"vector_count"`
	LastIndexedAt string `json:"last_indexed_at"`
}

const (
	ReindexFull        = "full"
	ReindexIncremental = "incremental"
)

type ReindexResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
