package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

const msgTemplate = "Welcome to Mintora!\n\nSigning address: %s"

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	msg := fmt.Sprintf(msgTemplate, strings.ToLower(address))
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	req.NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	im := New("jwt-secret", msgTemplate)

	tkn, err := im.SignToken(ctx, domain.Address(address), hexutil.Encode(sig))
	req.NoError(err)

	parsed, err := im.ParseToken(ctx, tkn)
	req.NoError(err)
	req.Equal(strings.ToLower(address), parsed)
}

func TestSignTokenRejectsWrongSigner(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	otherKey, err := crypto.GenerateKey()
	req.NoError(err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	msg := fmt.Sprintf(msgTemplate, strings.ToLower(address))
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), otherKey)
	req.NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	im := New("jwt-secret", msgTemplate)

	_, err = im.SignToken(ctx, domain.Address(address), hexutil.Encode(sig))
	req.ErrorIs(err, domain.ErrInvalidSignature)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	im := New("jwt-secret", msgTemplate)
	_, err := im.ParseToken(ctx, "not-a-token")
	req.Error(err)
}
