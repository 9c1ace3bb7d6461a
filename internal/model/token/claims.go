package token

import (
	"errors"
	"fmt"
	"strconv"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/config"
	"sitelabour/pkg/util/aescrypt"
	"sitelabour/pkg/util/encoding"

	"github.com/golang-jwt/jwt/v4"
)

type TokenClaims struct {
	ID        string `json:"id"`
	RoleID    string `json:"role_id"`
	Email     string `json:"email"`
	UuidLogin string `json:"uuid_login"`
	Exp       int64  `json:"exp"`

	jwt.RegisteredClaims
}

func (c TokenClaims) AuthContext() (*abstraction.AuthContext, error) {
	var (
		id         int
		roleId     int
		email      string
		uuidLogin  string
		err        error

		encryptionKey = config.Get().JWT.SecretKey
	)

	destructID := c.ID
	if destructID == "" {
		return nil, errors.New("invalid_token")
	}
	if id, err = strconv.Atoi(destructID); err != nil {
		if destructID, err = aescrypt.DecryptAES(destructID, encryptionKey); err != nil {
			return nil, errors.New("invalid_token")
		}
		if id, err = strconv.Atoi(destructID); err != nil {
			return nil, errors.New("invalid_token")
		}
	}

	destructRoleID := c.RoleID
	if destructRoleID == "" {
		return nil, errors.New("invalid_token")
	}
	if roleId, err = strconv.Atoi(destructRoleID); err != nil {
		if destructRoleID, err = aescrypt.DecryptAES(destructRoleID, encryptionKey); err != nil {
			return nil, errors.New("invalid_token")
		}
		if roleId, err = strconv.Atoi(destructRoleID); err != nil {
			return nil, errors.New("invalid_token")
		}
	}

	if c.Email == "" {
		return nil, errors.New("invalid_token")
	}
	if email, err = encoding.Decode(c.Email); err != nil {
		return nil, errors.New("invalid_token")
	}

	if c.UuidLogin == "" {
		return nil, errors.New("invalid_token")
	}
	if uuidLogin, err = encoding.Decode(c.UuidLogin); err != nil {
		return nil, errors.New("invalid_token")
	}

	return &abstraction.AuthContext{
		ID:        id,
		RoleID:    roleId,
		Email:     email,
		UuidLogin: uuidLogin,
	}, nil
}

type authToken struct {
	claims *TokenClaims
}

func NewAuthToken(claims *TokenClaims) *authToken {
	return &authToken{claims: claims}
}

func (t *authToken) Token() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":         t.claims.ID,
		"role_id":    t.claims.RoleID,
		"email":      t.claims.Email,
		"uuid_login": t.claims.UuidLogin,
		"exp":        t.claims.Exp,
	})
	return token.SignedString([]byte(config.Get().JWT.SecretKey))
}

type AuthEksternalToken struct {
	UserId int `json:"user_id"`

	jwt.RegisteredClaims
}

func (t *AuthEksternalToken) GenerateTokenEksternal() (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": t.UserId,
	})
	signed, err := token.SignedString([]byte(config.Get().JWT.SecretKey))
	if err != nil {
		return nil, err
	}
	return &signed, nil
}

func ValidateTokenEksternal(tokenString string) (*AuthEksternalToken, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method :%v", token.Header["alg"])
		}
		return []byte(config.Get().JWT.SecretKey), nil
	})
	if token == nil || !token.Valid || err != nil {
		return nil, errors.New("invalid_token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid_token")
	}
	rawUserId, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("invalid_token")
	}
	return &AuthEksternalToken{UserId: int(rawUserId)}, nil
}
