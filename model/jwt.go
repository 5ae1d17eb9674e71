package model

// TokenClaims ... Claims carried on a verified service token.
type TokenClaims struct {
	ServiceID   string   `json:"serviceId"`
	TokenType   string   `json:"tokenType"`
	Issuer      string   `json:"iss"`
	Permissions []string `json:"permissions"`
}
