// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"strings"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
)

func TestConfigValidation(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad inbox",
			mutate:  func(c *Config) { c.Inbox = "0x123" },
			wantErr: "is not a valid inbox address",
		},
		{
			name:    "zero lifetime",
			mutate:  func(c *Config) { c.TicketLifetime = 0 },
			wantErr: "ticket lifetime must be positive",
		},
		{
			name:    "zero tx timeout",
			mutate:  func(c *Config) { c.TxTimeout = 0 },
			wantErr: "tx timeout must be positive",
		},
		{
			name:    "limit padding below one",
			mutate:  func(c *Config) { c.AutoRedeemGas.LimitPadding = 0.5 },
			wantErr: "limit padding",
		},
		{
			name:    "fee cap padding below one",
			mutate:  func(c *Config) { c.AutoRedeemGas.FeeCapPadding = 0.9 },
			wantErr: "fee cap padding",
		},
		{
			name: "bad padding ignored when disabled",
			mutate: func(c *Config) {
				c.AutoRedeemGas.Disable = true
				c.AutoRedeemGas.LimitPadding = 0
			},
		},
		{
			name:    "zero redeem attempts",
			mutate:  func(c *Config) { c.Redeem.MaxAttempts = 0 },
			wantErr: "max attempts must be positive",
		},
		{
			name: "backoff not increasing",
			mutate: func(c *Config) {
				c.Redeem.BackoffInitial = time.Minute
				c.Redeem.BackoffMax = time.Second
			},
			wantErr: "is not an increasing range",
		},
		{
			name:    "zero poll delay",
			mutate:  func(c *Config) { c.Redeem.StatusPollDelay = 0 },
			wantErr: "status poll delay must be positive",
		},
	}
	for _, testCase := range testCases {
		config := *testClientConfig()
		testCase.mutate(&config)
		err := config.Validate()
		if testCase.wantErr == "" {
			Require(t, err, "case", testCase.name)
			continue
		}
		if err == nil || !strings.Contains(err.Error(), testCase.wantErr) {
			Fail(t, "case", testCase.name, "expected error containing", testCase.wantErr, "got", err)
		}
	}
}

func TestConfigAddOptions(t *testing.T) {
	t.Parallel()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	ConfigAddOptions("bridge", f)
	err := f.Parse([]string{
		"--bridge.inbox", testInboxAddress.Hex(),
		"--bridge.tx-timeout", "30s",
		"--bridge.auto-redeem-gas.limit-padding", "1.5",
		"--bridge.redeem.max-attempts", "3",
	})
	Require(t, err)
	inbox, err := f.GetString("bridge.inbox")
	Require(t, err)
	if inbox != testInboxAddress.Hex() {
		Fail(t, "wrong inbox flag value", inbox)
	}
	txTimeout, err := f.GetDuration("bridge.tx-timeout")
	Require(t, err)
	if txTimeout != 30*time.Second {
		Fail(t, "wrong tx timeout flag value", txTimeout)
	}
	padding, err := f.GetFloat64("bridge.auto-redeem-gas.limit-padding")
	Require(t, err)
	if padding != 1.5 {
		Fail(t, "wrong limit padding flag value", padding)
	}
	attempts, err := f.GetInt("bridge.redeem.max-attempts")
	Require(t, err)
	if attempts != 3 {
		Fail(t, "wrong max attempts flag value", attempts)
	}
}
