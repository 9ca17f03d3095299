// Copyright 2021-2022, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package stopwaiter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

const testStopDelayWarningTimeout = 350 * time.Millisecond

type TestStruct struct{}

func TestStopWaiterStopAndWaitTimeout(t *testing.T) {
	logHandler := testhelpers.InitTestLog(t, log.LvlTrace)
	sw := StopWaiter{}
	sw.Start(context.Background(), TestStruct{})
	sw.LaunchThread(func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(testStopDelayWarningTimeout + 150*time.Millisecond)
			}
		}
	})
	time.Sleep(50 * time.Millisecond)
	err := sw.stopAndWaitImpl(testStopDelayWarningTimeout)
	testhelpers.RequireImpl(t, err)
	if !logHandler.WasLogged(fmt.Sprintf("stopwaiter.TestStruct taking more than %s to stop", testStopDelayWarningTimeout.String())) {
		testhelpers.FailImpl(t, "Failed to log about hanging on StopAndWait")
	}
}

func TestStopWaiterCallIteratively(t *testing.T) {
	sw := StopWaiter{}
	sw.Start(context.Background(), TestStruct{})
	calls := make(chan struct{}, 10)
	sw.CallIteratively(func(ctx context.Context) time.Duration {
		select {
		case calls <- struct{}{}:
		default:
		}
		return 10 * time.Millisecond
	})
	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			testhelpers.FailImpl(t, "CallIteratively stopped iterating")
		}
	}
	sw.StopAndWait()
}

func TestStopWaiterStopBeforeStart(t *testing.T) {
	sw := StopWaiter{}
	sw.StopAndWait()
	sw.Start(context.Background(), TestStruct{})
	ctx := sw.GetContext()
	if ctx.Err() == nil {
		testhelpers.FailImpl(t, "context not cancelled after start-after-stop")
	}
	sw.StopAndWait()
}
