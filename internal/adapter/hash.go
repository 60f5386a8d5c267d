package adapter

import (
	"fmt"

	"github.com/minio/highwayhash"
)

// hashKey is fixed so fingerprints are stable across runs and reports.
var hashKey = []byte("flagstrip-unit-fingerprint-key!!")

// HashBytes returns the hex HighwayHash-64 fingerprint of content.
func HashBytes(content []byte) (string, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", err
	}

	if _, err := h.Write(content); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}
