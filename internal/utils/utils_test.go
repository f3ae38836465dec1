package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	full := Fingerprint("hunter2", 0)
	assert.Len(t, full, 64)
	assert.Equal(t, full[:10], Fingerprint("hunter2", 10))
	assert.Equal(t, full, Fingerprint("hunter2", 100))
}

func TestHashPhone(t *testing.T) {
	h := HashPhone("+15551234567")
	assert.Len(t, h, 12)
	assert.Equal(t, h, HashPhone("+1 (555) 123-4567"))
	assert.Equal(t, h, HashPhone("+1.555.123.4567"))
	assert.NotEqual(t, h, HashPhone("+15551234568"))
	assert.NotContains(t, h, "5551234567")
}

func TestHashName(t *testing.T) {
	h := HashName("Alice")
	assert.Len(t, h, 8)
	assert.Equal(t, h, HashName("  alice "))
	assert.NotEqual(t, h, HashName("Bob"))
}
