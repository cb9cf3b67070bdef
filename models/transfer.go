package models

// Transfer is a single token movement as returned by the subgraph.
// Wad is the amount in the token's base unit, encoded as a decimal string.
type Transfer struct {
	ID  string `json:"id"`
	Wad string `json:"wad"`
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// TransferRow is a Transfer prepared for display
type TransferRow struct {
	ID       string `json:"id"`
	ShortID  string `json:"short_id"`
	TxHash   string `json:"tx_hash"`
	TxURL    string `json:"tx_url"`
	Src      string `json:"src"`
	ShortSrc string `json:"short_src"`
	SrcURL   string `json:"src_url"`
	Dst      string `json:"dst"`
	ShortDst string `json:"short_dst"`
	DstURL   string `json:"dst_url"`
	Wad      string `json:"wad"`
	Value    string `json:"value"`
}
