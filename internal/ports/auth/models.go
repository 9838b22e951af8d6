package auth

// Claims representa al principal autenticado del request.
type Claims struct {
	UserID   string
	Username string
	Email    string
}
