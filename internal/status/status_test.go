package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedMessages(t *testing.T) {
	assert.Equal(t, "⚠️ Please fill in all fields.", MissingFields.Text)
	assert.Equal(t, Orange, MissingFields.Color)
	assert.Equal(t, "Checking integrity... Please wait...", Checking.Text)
	assert.Equal(t, Color("#2c3e50"), Checking.Color)
	assert.Equal(t, Green, Safe.Color)
	assert.Equal(t, "❌ Network Error: Could not connect to the server.", NetworkError.Text)
	assert.Equal(t, Red, NetworkError.Color)
}

func TestBreached(t *testing.T) {
	s := Breached(3)
	assert.Equal(t, "⚠️ BREACHED! Found in 3 breaches. Check your SMS for full details.", s.Text)
	assert.Equal(t, Red, s.Color)
	assert.Contains(t, Breached(1234567).Text, "1234567")
}

func TestAPIError(t *testing.T) {
	assert.Equal(t, "⚠️ API Error: Bad password", APIError("Bad password").Text)
	assert.Equal(t, "⚠️ API Error: Unknown error", APIError("").Text)
	assert.Equal(t, Red, APIError("x").Color)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	_, ok := r.Current()
	assert.False(t, ok)

	r.Show(Checking)
	r.Show(Safe)
	got, ok := r.Current()
	assert.True(t, ok)
	assert.Equal(t, Safe, got)
}

func TestRecorder_ConcurrentShow(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Show(Breached(n))
		}(i)
	}
	wg.Wait()

	got, ok := r.Current()
	assert.True(t, ok)
	assert.Equal(t, Red, got.Color)
}
