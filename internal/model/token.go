package model

// TokenManager issues and validates signed session tokens.
type TokenManager interface {
	Generate(userID ID) (string, error)
	Parse(token string) (ID, error)
}
