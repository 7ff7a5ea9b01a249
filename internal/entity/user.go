package entity

// User is a registered bookstore account. The username is the lookup key
// in the user database.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
}

func NewUser(username, password, email string) *User {
	return &User{
		Username: username,
		Password: password,
		Email:    email,
	}
}
