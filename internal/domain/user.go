package domain

type User struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	PhoneNumber  string   `json:"phoneNumber"`
	Address      string   `json:"address"`
	Role         UserRole `json:"userRole"`
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Email       *string   `json:"email"`
	Password    *string   `json:"password"`
	PhoneNumber *string   `json:"phoneNumber"`
	Address     *string   `json:"address"`
	Role        *UserRole `json:"userRole"`
}

// NewUser is the registration payload; Password is plain text and never stored.
type NewUser struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phoneNumber"`
	Address     string   `json:"address"`
	Role        UserRole `json:"userRole"`
}
