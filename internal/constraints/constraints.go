// Package constraints provides type constraints shared by the URI helpers.
package constraints

// Byteseq represents raw URI text given either as string or bytes.
type Byteseq interface {
	~string | ~[]byte
}
