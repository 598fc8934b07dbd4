package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/resp"
)

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// RequireJWT lets through only requests carrying, in the "Authorization" header,
// a bearer token signed with key using HMAC-SHA2.
// Other requests are answered with http.StatusUnauthorized.
//
// If key is empty, every request is answered with http.StatusUnauthorized.
func RequireJWT(key []byte) *dispatch.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return dispatch.NewHandler("require-jwt", func(r *http.Request) (dispatch.Response, error) {
		if err := validateBearer(parser, key, r.Header.Get("Authorization")); err != nil {
			return resp.New(
				resp.Code(http.StatusUnauthorized),
				resp.Header("WWW-Authenticate", `Bearer realm="boss"`),
				resp.Data(map[string]string{"error": err.Error()}),
			), nil
		}

		return nil, nil
	})
}

func validateBearer(parser *jwt.Parser, key []byte, header string) error {
	tok := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tok == "" || tok == header {
		return ErrNoToken
	}

	if len(key) == 0 {
		return ErrInvalidToken
	}

	_, err := parser.ParseWithClaims(tok, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	return nil
}
