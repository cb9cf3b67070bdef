package explorer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const DefaultBaseURL = "https://etherscan.io"

// Explorer builds links into an etherscan-style block explorer
type Explorer struct {
	base string
}

func New(baseURL string) (*Explorer, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse explorer url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid explorer url: %s", baseURL)
	}

	return &Explorer{base: strings.TrimRight(u.String(), "/")}, nil
}

// AddressURL links to the explorer page of an account. It returns an empty
// string for values that are not hex addresses.
func (e *Explorer) AddressURL(address string) string {
	if !common.IsHexAddress(address) {
		return ""
	}
	return e.join("address", address)
}

// TxURL links to the transaction that emitted the transfer with the given id
func (e *Explorer) TxURL(id string) string {
	hash := TxHash(id)
	if hash == "" {
		return ""
	}
	return e.join("tx", hash)
}

func (e *Explorer) join(elem ...string) string {
	u, err := url.JoinPath(e.base, elem...)
	if err != nil {
		return ""
	}
	return u
}

// TxHash extracts the transaction hash from a transfer id. Subgraph ids
// are "<tx hash>-<log index>".
func TxHash(id string) string {
	hash, _, _ := strings.Cut(id, "-")
	return hash
}
