package dto

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type IdentityOutput struct {
	UserID        int64
	Name          string
	Email         string
	Role          string
	Admin         bool
	Authenticated bool
}
