package scheduler

import (
	"testing"

	"github.com/osse101/PitchBot_Go/internal/testing/leaktest"
)

func TestMain(m *testing.M) {
	leaktest.VerifyTestMain(m)
}
