package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type Table string

const (
	TableListings   Table = "listings"
	TableEscrows    Table = "escrows"
	TableFeePolicy  Table = "fee_policy"
	TableSequences  Table = "sequences"
	TableActivities Table = "activities"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// ListingId identifies a listing. Ids are allocated monotonically and never reused.
type ListingId int64

// TokenId is the asset identifier within its contract, kept as a decimal string
// since uint256 does not fit in an int64.
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type TxHash string

type BlockNumber uint64

// Amount is a non-negative integer value kept as a decimal string.
// Arithmetic goes through math/big, string fields never overflow.
type Amount string

const ZeroAmount = Amount("0")

func (a Amount) BigInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	if n.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return n, nil
}

func (a Amount) IsZero() bool {
	n, err := a.BigInt()
	if err != nil {
		return false
	}
	return n.Sign() == 0
}

// Cmp returns -1, 0 or 1 like big.Int.Cmp. Malformed operands return an error.
func (a Amount) Cmp(b Amount) (int, error) {
	x, err := a.BigInt()
	if err != nil {
		return 0, err
	}
	y, err := b.BigInt()
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func (a Amount) Add(b Amount) (Amount, error) {
	x, err := a.BigInt()
	if err != nil {
		return "", err
	}
	y, err := b.BigInt()
	if err != nil {
		return "", err
	}
	return Amount(new(big.Int).Add(x, y).String()), nil
}

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}

func ParseListingId(s string) (ListingId, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || !n.IsInt64() {
		return 0, xerrors.Errorf("invalid listing id %s: %w", s, ErrBadParamInput)
	}
	return ListingId(n.Int64()), nil
}
