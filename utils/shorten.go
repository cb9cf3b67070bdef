package utils

const (
	shortHead = 10
	shortTail = 6
	ellipsis  = "..."
)

// ShortenAddress keeps the first 10 and last 6 characters of an address,
// e.g. 0x6b175474...271d0f
func ShortenAddress(addr string) string {
	if len(addr) <= shortHead+shortTail {
		return addr
	}
	return addr[:shortHead] + ellipsis + addr[len(addr)-shortTail:]
}

// ShortenHash keeps the first 10 characters of a hash or identifier
func ShortenHash(hash string) string {
	if len(hash) <= shortHead {
		return hash
	}
	return hash[:shortHead] + ellipsis
}
