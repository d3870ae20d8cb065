package domain

// User is the subset of account metadata the tool cares about.
type User struct {
	// Login is the account username.
	Login string `json:"login"`

	// Followers is the follower count.
	Followers int `json:"followers"`
}
