package farming

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PitchBot_Go/internal/domain"
	"github.com/osse101/PitchBot_Go/internal/testing/leaktest"
	"github.com/osse101/PitchBot_Go/mocks"
)

func TestSupervisor_IndependentWorkers(t *testing.T) {
	defer leaktest.VerifyNone(t)

	failing := mocks.NewMockPitchtalkClient(t)
	failing.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: bad hash", domain.ErrAuthFailed)).Once()

	running := mocks.NewMockPitchtalkClient(t)
	running.On("Authenticate", mock.Anything, mock.Anything).Return(&domain.AuthData{AccessToken: "tok"}, nil).Once()
	running.On("GetFarming", mock.Anything, "tok").
		Return(&domain.FarmingState{EndTime: timePtr(time.Now().Add(time.Hour)), Coins: 7}, nil).Once()

	sup := NewSupervisor([]*Worker{
		NewWorker(testIdentity("bad"), failing, nil, testOpts),
		NewWorker(testIdentity("good"), running, nil, testOpts),
	})

	initial := sup.Snapshot()
	require.Len(t, initial, 2)
	assert.Equal(t, StateStart, initial[0].State)

	sup.Start(context.Background())

	require.Eventually(t, func() bool {
		snap := sup.Snapshot()
		return snap[0].State == StateFailed && snap[1].State == StateWaiting
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, sup.Alive())
	snap := sup.Snapshot()
	assert.Equal(t, "bad", snap[0].Identity)
	assert.Contains(t, snap[0].LastError, domain.ErrMsgAuthFailed)
	assert.Equal(t, int64(7), snap[1].Balance)
	assert.False(t, snap[1].NextClaimAt.IsZero())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sup.Shutdown(ctx))

	<-sup.Done()
	assert.ErrorIs(t, sup.Err(), domain.ErrAuthFailed)
	assert.Equal(t, StateStopped, sup.Snapshot()[1].State)
	assert.Equal(t, 0, sup.Alive())
}

func TestSupervisor_ShutdownBeforeStart(t *testing.T) {
	sup := NewSupervisor(nil)
	assert.NoError(t, sup.Shutdown(context.Background()))
}
