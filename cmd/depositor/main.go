// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/spf13/pflag"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/feetoken-bridge/arbutil"
	"github.com/offchainlabs/feetoken-bridge/bridgeclient"
	"github.com/offchainlabs/feetoken-bridge/cmd/genericconf"
	"github.com/offchainlabs/feetoken-bridge/cmd/util"
	"github.com/offchainlabs/feetoken-bridge/cmd/util/confighelpers"
	"github.com/offchainlabs/feetoken-bridge/util/arbmath"
)

type ChainConfig struct {
	URL    string                   `koanf:"url"`
	Wallet genericconf.WalletConfig `koanf:"wallet"`
}

func ChainConfigAddOptions(prefix string, f *pflag.FlagSet) {
	f.String(prefix+".url", "", "RPC endpoint of the chain")
	genericconf.WalletConfigAddOptions(prefix+".wallet", f, "")
}

type DepositorConfig struct {
	Conf genericconf.ConfConfig `koanf:"conf"`

	FileLogging genericconf.FileLoggingConfig `koanf:"file-logging"`
	LogLevel    string                        `koanf:"log-level"`
	LogType     string                        `koanf:"log-type"`

	Metrics       bool                            `koanf:"metrics"`
	MetricsServer genericconf.MetricsServerConfig `koanf:"metrics-server"`
	PProf         bool                            `koanf:"pprof"`
	PprofCfg      genericconf.PProf               `koanf:"pprof-cfg"`

	ParentChain ChainConfig `koanf:"parent-chain"`
	ChildChain  ChainConfig `koanf:"child-chain"`

	Bridge bridgeclient.Config `koanf:"bridge"`

	Amount       string        `koanf:"amount"`
	Destination  string        `koanf:"destination"`
	Direct       bool          `koanf:"direct"`
	ApproveMax   bool          `koanf:"approve-max"`
	AwaitTimeout time.Duration `koanf:"await-timeout"`
}

var DefaultDepositorConfig = DepositorConfig{
	Conf:          genericconf.ConfConfigDefault,
	FileLogging:   genericconf.DefaultFileLoggingConfig,
	LogLevel:      "INFO",
	LogType:       "plaintext",
	Metrics:       false,
	MetricsServer: genericconf.MetricsServerConfigDefault,
	PProf:         false,
	PprofCfg:      genericconf.PProfDefault,
	Bridge:        bridgeclient.DefaultConfig,
	Amount:        "",
	Destination:   "",
	Direct:        false,
	ApproveMax:    false,
	AwaitTimeout:  time.Minute * 10,
}

func addFlags(f *pflag.FlagSet) {
	genericconf.ConfConfigAddOptions("conf", f)

	genericconf.FileLoggingConfigAddOptions("file-logging", f)
	f.String("log-level", DefaultDepositorConfig.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", DefaultDepositorConfig.LogType, "log type (plaintext or json)")

	f.Bool("metrics", DefaultDepositorConfig.Metrics, "enable metrics")
	genericconf.MetricsServerAddOptions("metrics-server", f)

	f.Bool("pprof", DefaultDepositorConfig.PProf, "enable pprof")
	genericconf.PProfAddOptions("pprof-cfg", f)

	ChainConfigAddOptions("parent-chain", f)
	ChainConfigAddOptions("child-chain", f)

	bridgeclient.ConfigAddOptions("bridge", f)

	f.String("amount", DefaultDepositorConfig.Amount, "amount of the fee token to deposit, in its smallest unit")
	f.String("destination", DefaultDepositorConfig.Destination, "child-chain address to credit (default is the depositing account)")
	f.Bool("direct", DefaultDepositorConfig.Direct, "use the plain deposit path instead of a retryable ticket")
	f.Bool("approve-max", DefaultDepositorConfig.ApproveMax, "when an approval is needed, grant the maximum allowance instead of the deposit's cost")
	f.Duration("await-timeout", DefaultDepositorConfig.AwaitTimeout, "how long to wait for the deposit to be credited on the child chain (0 = no limit)")
}

func parseConfig(args []string) (*DepositorConfig, error) {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	addFlags(f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}

	var config DepositorConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	if config.Conf.Dump {
		err = confighelpers.DumpConfig(k, map[string]interface{}{
			"parent-chain.wallet.password":    "",
			"parent-chain.wallet.private-key": "",
			"child-chain.wallet.password":     "",
			"child-chain.wallet.private-key":  "",
		})
		if err != nil {
			return nil, fmt.Errorf("error removing extra parameters before dump: %w", err)
		}

		c, err := k.Marshal(json.Parser())
		if err != nil {
			return nil, fmt.Errorf("unable to marshal config file to JSON: %w", err)
		}

		fmt.Println(string(c))
		os.Exit(0)
	}

	return &config, nil
}

func printSampleUsage(progname string) {
	fmt.Printf("\n")
	fmt.Printf("Sample usage: %s --parent-chain.url <URL> --child-chain.url <URL> --bridge.inbox <ADDRESS> --amount <WEI> \n", progname)
	fmt.Printf("Sample usage: %s --help \n", progname)
}

func main() {
	os.Exit(mainImpl())
}

// Returns the exit code
func mainImpl() int {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	config, err := parseConfig(os.Args[1:])
	if err != nil {
		confighelpers.PrintErrorAndExit(err, printSampleUsage)
	}

	err = genericconf.InitLog(config.LogType, config.LogLevel, &config.FileLogging, genericconf.DefaultPathResolver(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing log: %v\n", err)
		return 1
	}

	if err := util.StartMetricsAndPProf(&util.MetricsPProfOpts{
		Metrics:       config.Metrics,
		MetricsServer: config.MetricsServer,
		PProf:         config.PProf,
		PprofCfg:      config.PprofCfg,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "error starting metrics: %v\n", err)
		return 1
	}

	vcsRevision, _, vcsTime := confighelpers.GetVersion()
	log.Info("Running fee token depositor", "revision", vcsRevision, "vcs.time", vcsTime)

	amount, ok := new(big.Int).SetString(config.Amount, 10)
	if !ok || amount.Sign() <= 0 {
		log.Error("--amount must be a positive integer in the token's smallest unit", "amount", config.Amount)
		return 1
	}
	var destination common.Address
	if config.Destination != "" {
		if !common.IsHexAddress(config.Destination) {
			log.Error("--destination is not a valid address", "destination", config.Destination)
			return 1
		}
		destination = common.HexToAddress(config.Destination)
	}

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigint
		log.Info("shutting down because of sigint")
		cancelFunc()
	}()

	parentClient, err := ethclient.DialContext(ctx, config.ParentChain.URL)
	if err != nil {
		log.Error("failed connecting to parent chain", "url", config.ParentChain.URL, "err", err)
		return 1
	}
	defer parentClient.Close()
	childClient, err := ethclient.DialContext(ctx, config.ChildChain.URL)
	if err != nil {
		log.Error("failed connecting to child chain", "url", config.ChildChain.URL, "err", err)
		return 1
	}
	defer childClient.Close()

	parentChainId, err := parentClient.ChainID(ctx)
	if err != nil {
		log.Error("failed reading parent chain id", "err", err)
		return 1
	}
	parentAuth, _, err := util.OpenWallet("parent-chain", &config.ParentChain.Wallet, parentChainId)
	if err != nil {
		log.Error("failed opening parent-chain wallet", "err", err)
		return 1
	}

	// The child account funds manual redeems and maintenance. Without one the
	// client still deposits and observes.
	var childAuth *bind.TransactOpts
	if config.ChildChain.Wallet.PrivateKey != "" || config.ChildChain.Wallet.Pathname != "" {
		childChainId, err := childClient.ChainID(ctx)
		if err != nil {
			log.Error("failed reading child chain id", "err", err)
			return 1
		}
		childAuth, _, err = util.OpenWallet("child-chain", &config.ChildChain.Wallet, childChainId)
		if err != nil {
			log.Error("failed opening child-chain wallet", "err", err)
			return 1
		}
	}

	client, err := bridgeclient.NewClient(ctx, &config.Bridge, parentClient, childClient, parentAuth, childAuth)
	if err != nil {
		log.Error("failed creating bridge client", "err", err)
		return 1
	}
	log.Info("bridge client ready",
		"inbox", client.InboxAddress(), "bridge", client.BridgeAddress(), "token", client.TokenAddress())

	need := amount
	if !config.Direct {
		estimate, err := client.EstimateDeposit(ctx, amount, destination)
		if err != nil {
			log.Error("failed estimating deposit", "err", err)
			return 1
		}
		need = estimate.TokenTotal
		log.Info("deposit estimated", "amount", amount, "tokenTotal", estimate.TokenTotal,
			"submissionFee", estimate.SubmissionFee, "gasLimit", estimate.GasLimit, "maxFeePerGas", estimate.MaxFeePerGas)
	}

	if err := ensureAllowance(ctx, config, client, parentClient, parentAuth.From, need); err != nil {
		log.Error("failed ensuring inbox allowance", "err", err)
		return 1
	}

	if config.Direct {
		_, msg, err := client.DepositDirect(ctx, amount)
		if err != nil {
			log.Error("direct deposit failed", "err", err)
			return 1
		}
		log.Info("deposit delivered", "to", msg.To, "value", msg.Value, "messageNum", msg.MessageNum)
		return 0
	}

	result, err := client.Deposit(ctx, amount, destination)
	if err != nil {
		log.Error("deposit failed", "err", err)
		return 1
	}
	ticket := result.Ticket

	// Watch the credit with the monitor redeeming in the background, so the
	// balance baseline predates the redemption.
	monitor, err := client.MonitorTicket(ctx, ticket)
	if err != nil {
		log.Error("failed starting ticket monitor", "ticketId", ticket.Id, "err", err)
		return 1
	}
	credit, err := client.AwaitCredit(ctx, destination, amount, ticket, config.AwaitTimeout)
	if err != nil {
		log.Error("deposit was not credited", "ticketId", ticket.Id, "attempts", monitor.Attempts(), "err", err)
		return 1
	}
	log.Info("deposit credited", "ticketId", ticket.Id, "delta", credit.Delta,
		"elapsed", credit.Elapsed, "redeemAttempts", monitor.Attempts())
	return 0
}

// ensureAllowance tops up the inbox allowance when it can't cover the deposit.
func ensureAllowance(ctx context.Context, config *DepositorConfig, client *bridgeclient.Client, parentClient *ethclient.Client, owner common.Address, need *big.Int) error {
	allowance, err := client.AllowanceOf(ctx, owner, client.InboxAddress())
	if err != nil {
		return err
	}
	if arbmath.BigGreaterThanOrEqual(allowance, need) {
		return nil
	}
	var grant *big.Int
	if !config.ApproveMax {
		grant = need
	}
	log.Info("granting inbox allowance", "have", allowance, "need", need, "max", config.ApproveMax)
	tx, err := client.ApproveInbox(ctx, grant)
	if err != nil {
		return err
	}
	_, err = arbutil.EnsureTxSucceededWithTimeout(ctx, parentClient, tx, config.Bridge.TxTimeout)
	return err
}
