package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyNone_CleanTest(t *testing.T) {
	defer VerifyNone(t)

	done := make(chan struct{})
	go func() {
		time.Sleep(5 * time.Millisecond)
		close(done)
	}()
	<-done
}

func TestOptions_AppendsExtra(t *testing.T) {
	base := Options()
	extended := Options(base[0])

	assert.Len(t, extended, len(base)+1)
}
