package util

import (
	"fmt"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/metrics/exp"

	"github.com/offchainlabs/feetoken-bridge/cmd/genericconf"
)

type MetricsPProfOpts struct {
	Metrics       bool
	MetricsServer genericconf.MetricsServerConfig
	PProf         bool
	PprofCfg      genericconf.PProf
}

// StartMetricsAndPProf starts the metrics exporter and the pprof server when
// enabled. They may be toggled independently but cannot share an address:port.
func StartMetricsAndPProf(opts *MetricsPProfOpts) error {
	metricsAddr := fmt.Sprintf("%v:%v", opts.MetricsServer.Addr, opts.MetricsServer.Port)
	pprofAddr := fmt.Sprintf("%v:%v", opts.PprofCfg.Addr, opts.PprofCfg.Port)
	if opts.Metrics && !metrics.Enabled {
		return fmt.Errorf("metrics must be enabled via command line by adding --metrics, json config has no effect")
	}
	if opts.Metrics && opts.PProf && metricsAddr == pprofAddr {
		return fmt.Errorf("metrics and pprof cannot share %s", metricsAddr)
	}
	if opts.Metrics {
		go metrics.CollectProcessMetrics(opts.MetricsServer.UpdateInterval)
		exp.Setup(metricsAddr)
	}
	if opts.PProf {
		genericconf.StartPprof(pprofAddr)
	}
	return nil
}
