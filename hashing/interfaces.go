package hashing

// IHash reduces data to a 64-bit value, e.g. to derive a random seed from a label.
type IHash interface {
	Sum64(data []byte) uint64
	GetType() string
}
