package models

// SignupForm carries the account creation fields after handler-level
// validation (password length, confirmation match, email format).
type SignupForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// PostForm carries the community board form fields.
type PostForm struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
