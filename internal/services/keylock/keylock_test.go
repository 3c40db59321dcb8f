package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/naruto2d6-discord/internal/services/keylock"
)

func TestLocker_SerialisesSameKey(t *testing.T) {
	l := keylock.New()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(keylock.RecordKey("r-1"))
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, l.Len(), "idle keys should be released")
}

func TestLocker_IndependentKeys(t *testing.T) {
	l := keylock.New()

	unlockA := l.Lock(keylock.RecordKey("a"))
	unlockB := l.Lock(keylock.CharacterKey("a"))
	assert.Equal(t, 2, l.Len())

	unlockB()
	unlockA()
	unlockA()
	assert.Equal(t, 0, l.Len())
}
