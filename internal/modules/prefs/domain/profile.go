package domain

// Profile is the user record behind /users/{id}: account identity plus the
// personal metrics that get merged into preference submissions.
type Profile struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Gender    string  `json:"gender"`
	CreatedAt string  `json:"createdAt"`
}

// ProfileUpdate is an edit to the user record. The password pair rides
// along only when the user is changing their password; the server verifies
// the current one.
type ProfileUpdate struct {
	Name            string
	Age             int
	Weight          float64
	Height          float64
	Gender          string
	CurrentPassword string
	NewPassword     string
}
