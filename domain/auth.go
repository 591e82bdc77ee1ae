package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/mintora/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues an access token after validating the address owner's
	// signature over the signing message.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
