package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Input is the set of fields a product identity is derived from.
type Input struct {
	Name        string
	BrandID     string
	ABV         float64
	CategoryID  string
	PackagingID string
	VolumeCc    int
	// TypeID is the category specific discriminator (beer style, spirit type).
	TypeID string
}

// Canonical returns the string the hash is computed over.
func (in Input) Canonical() string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(in.Name)),
		in.BrandID,
		fmt.Sprintf("%.1f", in.ABV),
		in.CategoryID,
		in.PackagingID,
		strconv.Itoa(in.VolumeCc),
		in.TypeID,
	}, "|")
}

// Hash returns the lowercase hex SHA-256 of the canonical identity string.
func Hash(in Input) string {
	sum := sha256.Sum256([]byte(in.Canonical()))
	return hex.EncodeToString(sum[:])
}
