// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ethereum/go-ethereum/common"

	"github.com/offchainlabs/feetoken-bridge/retryables"
)

// AutoRedeemGasConfig controls how much child-chain gas a deposit buys for the
// scheduled automatic redemption. With Disable set the ticket is submitted with
// zero gas params, no auto-redeem is scheduled, and redemption is manual-only.
type AutoRedeemGasConfig struct {
	Disable       bool    `koanf:"disable"`
	LimitPadding  float64 `koanf:"limit-padding"`
	FeeCapPadding float64 `koanf:"fee-cap-padding"`
}

func AutoRedeemGasConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".disable", DefaultAutoRedeemGasConfig.Disable, "submit tickets unfunded, relying on manual redemption")
	f.Float64(prefix+".limit-padding", DefaultAutoRedeemGasConfig.LimitPadding, "multiplier applied to the estimated redeem gas limit")
	f.Float64(prefix+".fee-cap-padding", DefaultAutoRedeemGasConfig.FeeCapPadding, "multiplier applied to the suggested child gas price")
}

var DefaultAutoRedeemGasConfig = AutoRedeemGasConfig{
	Disable:       false,
	LimitPadding:  1.2,
	FeeCapPadding: 2.,
}

func (c *AutoRedeemGasConfig) Validate() error {
	if c.Disable {
		return nil
	}
	if c.LimitPadding < 1 {
		return fmt.Errorf("auto-redeem gas limit padding %v would underfund the estimate", c.LimitPadding)
	}
	if c.FeeCapPadding < 1 {
		return fmt.Errorf("auto-redeem fee cap padding %v would underfund the estimate", c.FeeCapPadding)
	}
	return nil
}

// RedeemConfig bounds the manual-redemption loop for one ticket.
type RedeemConfig struct {
	MaxAttempts     int           `koanf:"max-attempts"`
	BackoffInitial  time.Duration `koanf:"backoff-initial"`
	BackoffMax      time.Duration `koanf:"backoff-max"`
	StatusPollDelay time.Duration `koanf:"status-poll-delay"`
}

func RedeemConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Int(prefix+".max-attempts", DefaultRedeemConfig.MaxAttempts, "maximum manual redemption attempts per ticket before giving up")
	f.Duration(prefix+".backoff-initial", DefaultRedeemConfig.BackoffInitial, "initial delay between manual redemption attempts")
	f.Duration(prefix+".backoff-max", DefaultRedeemConfig.BackoffMax, "maximum delay between manual redemption attempts")
	f.Duration(prefix+".status-poll-delay", DefaultRedeemConfig.StatusPollDelay, "how often a monitor re-reads ticket status")
}

var DefaultRedeemConfig = RedeemConfig{
	MaxAttempts:     5,
	BackoffInitial:  time.Second * 5,
	BackoffMax:      time.Minute,
	StatusPollDelay: time.Second * 5,
}

var TestRedeemConfig = RedeemConfig{
	MaxAttempts:     5,
	BackoffInitial:  time.Millisecond,
	BackoffMax:      time.Millisecond * 10,
	StatusPollDelay: time.Millisecond,
}

func (c *RedeemConfig) Validate() error {
	if c.MaxAttempts <= 0 {
		return errors.New("redeem max attempts must be positive")
	}
	if c.BackoffInitial <= 0 || c.BackoffMax < c.BackoffInitial {
		return fmt.Errorf("redeem backoff %v..%v is not an increasing range", c.BackoffInitial, c.BackoffMax)
	}
	if c.StatusPollDelay <= 0 {
		return errors.New("status poll delay must be positive")
	}
	return nil
}

// Config is the immutable construction-time configuration of a Client.
type Config struct {
	Inbox           string              `koanf:"inbox"`
	TicketLifetime  time.Duration       `koanf:"ticket-lifetime"`
	TxTimeout       time.Duration       `koanf:"tx-timeout"`
	AutoRedeemGas   AutoRedeemGasConfig `koanf:"auto-redeem-gas"`
	Redeem          RedeemConfig        `koanf:"redeem"`
	SkipChainChecks bool                `koanf:"skip-chain-checks"`
}

func ConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".inbox", DefaultConfig.Inbox, "address of the parent-chain ERC20Inbox contract")
	f.Duration(prefix+".ticket-lifetime", DefaultConfig.TicketLifetime, "validity window of a created ticket, must match the child chain's configured lifetime")
	f.Duration(prefix+".tx-timeout", DefaultConfig.TxTimeout, "how long to wait for a submitted transaction to be mined")
	AutoRedeemGasConfigAddOptions(prefix+".auto-redeem-gas", f)
	RedeemConfigAddOptions(prefix+".redeem", f)
	f.Bool(prefix+".skip-chain-checks", DefaultConfig.SkipChainChecks, "don't verify inbox registration and ticket lifetime against the chains at startup")
}

var DefaultConfig = Config{
	Inbox:           "",
	TicketLifetime:  time.Second * retryables.RetryableLifetimeSeconds,
	TxTimeout:       time.Minute * 5,
	AutoRedeemGas:   DefaultAutoRedeemGasConfig,
	Redeem:          DefaultRedeemConfig,
	SkipChainChecks: false,
}

var TestConfig = Config{
	Inbox:           "",
	TicketLifetime:  time.Second * retryables.RetryableLifetimeSeconds,
	TxTimeout:       time.Second * 5,
	AutoRedeemGas:   DefaultAutoRedeemGasConfig,
	Redeem:          TestRedeemConfig,
	SkipChainChecks: false,
}

func (c *Config) Validate() error {
	if !common.IsHexAddress(c.Inbox) {
		return fmt.Errorf("\"%v\" is not a valid inbox address", c.Inbox)
	}
	if c.TicketLifetime <= 0 {
		return errors.New("ticket lifetime must be positive")
	}
	if c.TxTimeout <= 0 {
		return errors.New("tx timeout must be positive")
	}
	if err := c.AutoRedeemGas.Validate(); err != nil {
		return err
	}
	return c.Redeem.Validate()
}

func (c *Config) InboxAddress() common.Address {
	return common.HexToAddress(c.Inbox)
}
