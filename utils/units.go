package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

const (
	// EtherDecimals is the power of ten between a wad and one whole token
	EtherDecimals = 18

	// DisplayPlaces is the number of decimal places shown for an amount
	DisplayPlaces = 2
)

// ParseWad parses a base-unit amount. Both decimal and 0x-prefixed hex
// strings are accepted, up to 256 bits.
func ParseWad(wad string) (*big.Int, error) {
	wad = strings.TrimSpace(wad)
	if wad == "" {
		return nil, fmt.Errorf("empty amount")
	}

	v, ok := math.ParseBig256(wad)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", wad)
	}

	return v, nil
}

// FormatUnits scales a base-unit amount down by 10^decimals and rounds it
// half away from zero to the given number of places.
func FormatUnits(wad string, decimals int32, places int32) (string, error) {
	v, err := ParseWad(wad)
	if err != nil {
		return "", err
	}

	return decimal.NewFromBigInt(v, -decimals).StringFixed(places), nil
}

// FormatEther renders a wad as a whole-token amount with two decimals,
// e.g. "1000000000000000000" -> "1.00".
func FormatEther(wad string) (string, error) {
	return FormatUnits(wad, EtherDecimals, DisplayPlaces)
}
