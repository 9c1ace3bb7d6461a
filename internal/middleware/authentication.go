package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"slices"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/config"
	modelToken "sitelabour/internal/model/token"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/util/general"
	"sitelabour/pkg/util/response"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// parseBearerToken destructures the signed claims back into an AuthContext.
// validateClaims false skips expiry so logout still works on expired tokens.
func parseBearerToken(authHeader string, validateClaims bool) (*abstraction.AuthContext, *response.MetaError) {
	jwtKey := config.Get().JWT.SecretKey

	if authHeader == "" || !strings.Contains(authHeader, "Bearer") {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}
	tokenString := strings.Replace(authHeader, "Bearer ", "", -1)

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method :%v", token.Header["alg"])
		}
		return []byte(jwtKey), nil
	}

	var (
		token *jwt.Token
		err   error
	)
	if validateClaims {
		token, err = jwt.Parse(tokenString, keyFunc)
	} else {
		token, err = jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, keyFunc, jwt.WithoutClaimsValidation())
	}
	if token == nil {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}
	if validateClaims && (!token.Valid || err != nil) {
		if errJWT, ok := err.(*jwt.ValidationError); ok && errJWT.Errors == jwt.ValidationErrorExpired {
			return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), errJWT.Error())
		}
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, err, "error when claim token")
	}

	claims := modelToken.TokenClaims{}
	if v, ok := mapClaims["id"].(string); ok {
		claims.ID = v
	}
	if v, ok := mapClaims["role_id"].(string); ok {
		claims.RoleID = v
	}
	if v, ok := mapClaims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := mapClaims["uuid_login"].(string); ok {
		claims.UuidLogin = v
	}

	auth, errClaims := claims.AuthContext()
	if errClaims != nil {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errClaims, "invalid_token")
	}
	return auth, nil
}

func Authentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, errToken := parseBearerToken(c.Request().Header.Get("Authorization"), true)
		if errToken != nil {
			return errToken.SendError(c)
		}

		userMustLogout := general.GetRedisUUIDArray(dbRedis, constant.REDIS_KEY_AUTO_LOGOUT)
		if slices.Contains(userMustLogout, auth.UuidLogin) {
			return response.ErrorBuilder(http.StatusUnprocessableEntity, errors.New("unprocessable"), "expired_token").SendError(c)
		}

		cc := c.(*abstraction.Context)
		cc.Auth = auth

		return next(cc)
	}
}

func Logout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, errToken := parseBearerToken(c.Request().Header.Get("Authorization"), false)
		if errToken != nil {
			return errToken.SendError(c)
		}

		cc := c.(*abstraction.Context)
		cc.Auth = auth

		return next(cc)
	}
}

func RefreshToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, errToken := parseBearerToken(c.Request().Header.Get("Authorization"), false)
		if errToken != nil {
			return errToken.SendError(c)
		}

		userMustLogout := general.GetRedisUUIDArray(dbRedis, constant.REDIS_KEY_AUTO_LOGOUT)
		if slices.Contains(userMustLogout, auth.UuidLogin) {
			return response.ErrorBuilder(http.StatusUnprocessableEntity, errors.New("unprocessable"), "expired_token").SendError(c)
		}

		keysRefreshToken := fmt.Sprintf(constant.REDIS_KEY_REFRESH_TOKEN, auth.UuidLogin)
		value := dbRedis.Incr(context.Background(), keysRefreshToken)
		if value.Err() != nil {
			return response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token").SendError(c)
		}
		if value.Val() > constant.REDIS_MAX_REFRESH_TOKEN {
			dbRedis.Del(context.Background(), keysRefreshToken)
			return response.ErrorBuilder(http.StatusUnprocessableEntity, errors.New("unprocessable"), "expired_token").SendError(c)
		}

		cc := c.(*abstraction.Context)
		cc.Auth = auth

		return next(cc)
	}
}

// JustValidateToken backs the websocket connect handshake, where there is no
// echo context to hang the claims on.
func JustValidateToken(tokenString string) (*abstraction.Context, *response.MetaError) {
	auth, errToken := parseBearerToken("Bearer "+tokenString, true)
	if errToken != nil {
		return nil, errToken
	}
	cc := new(abstraction.Context)
	cc.Auth = auth
	return cc, nil
}
