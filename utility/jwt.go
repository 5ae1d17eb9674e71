package utility

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	Config "authorization-engine/config"

	jwt "github.com/dgrijalva/jwt-go"
)

// VerifyJWT ... This verifies a JWT generated token
func VerifyJWT(authToken string, config Config.Data, tokenClaims interface{}) error {

	authenticatorKey := config.AuthenticatorKey
	keyByte, err := base64.URLEncoding.DecodeString(authenticatorKey)
	if err != nil {
		return err
	}

	token, err := jwt.Parse(authToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		rsa, err := jwt.ParseRSAPublicKeyFromPEM(keyByte)
		if err != nil {
			return nil, err
		}
		return rsa, nil
	})

	if err != nil {
		return err
	}

	jwtClaims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		claimBytes, err := json.Marshal(jwtClaims)
		if err != nil {
			return err
		}
		json.Unmarshal(claimBytes, tokenClaims)
		return nil
	}

	return errors.New("Failed to validate token")
}

// DecodeAuthToken ... Decodes token claims without re-verifying the signature
func DecodeAuthToken(authToken string, config Config.Data, tokenClaims interface{}) error {
	parts := jwt.Parser{}
	token, _, err := parts.ParseUnverified(authToken, jwt.MapClaims{})
	if err != nil {
		return err
	}
	jwtClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("Failed to decode token claims")
	}
	claimBytes, err := json.Marshal(jwtClaims)
	if err != nil {
		return err
	}
	return json.Unmarshal(claimBytes, tokenClaims)
}
