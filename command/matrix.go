package command

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// matrixKey produces a canonical, order-sensitive structural key for an
// overload matrix, standing in for the source's custom
// Object2ObjectOpenCustomHashMap hash/equals strategy (spec.md §4.3
// "Overload-matrix equality and hashing"). Go map keys need only be
// comparable, not a full hash/equals pair, so a deterministic
// serialization of the matrix is sufficient: two matrices hash equal
// here iff they have equal shape and every corresponding ParamData is
// element-wise equal.
func matrixKey(matrix [][]ParamData) string {
	// json.Marshal visits struct fields in declaration order and slice
	// elements in order, so identical matrices always serialize
	// byte-identically regardless of construction path.
	b, err := json.Marshal(matrix)
	if err != nil {
		// ParamData is plain data (strings, bools, a *CommandEnum of
		// strings); marshaling cannot fail in practice.
		panic("command: marshaling overload matrix: " + err.Error())
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
