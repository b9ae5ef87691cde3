package types

// Ecosystem selects how installed versions are compared with compromised
// versions when the exact name@version key does not match.
type Ecosystem string

const (
	EcosystemNpm Ecosystem = "npm"
	EcosystemPip Ecosystem = "pip"
	EcosystemDeb Ecosystem = "deb"
)

// InventoryFormat describes the layout of the enumerator output file.
type InventoryFormat string

const (
	InventoryFormatPairs InventoryFormat = "pairs"
	InventoryFormatJSONL InventoryFormat = "jsonl"
)
