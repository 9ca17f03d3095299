// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package confighelpers

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/feetoken-bridge/cmd/genericconf"
)

var version = ""
var datetime = ""
var modified = ""

func GetVersion() (string, string, string) {
	return genericconf.GetVersion(version, datetime, modified)
}

func PrintErrorAndExit(err error, usage func(string)) {
	vcsRevision, _, vcsTime := GetVersion()
	fmt.Printf("Version: %v, time: %v\n", vcsRevision, vcsTime)
	if err != nil && errors.Is(err, flag.ErrHelp) {
		// Already printed usage
		os.Exit(0)
	}
	fmt.Printf("\n%s\n", err.Error())
	usage(os.Args[0])
	os.Exit(1)
}

func ApplyOverrides(f *flag.FlagSet, k *koanf.Koanf) error {
	// Apply command line options and environment variables
	if err := applyOverrideOverrides(f, k); err != nil {
		return err
	}

	// Config files overlay each other in the order given, then the command
	// line and environment are re-applied on top of each file.
	configFiles := k.Strings("conf.file")
	for _, configFile := range configFiles {
		if len(configFile) > 0 {
			if err := k.Load(file.Provider(configFile), json.Parser()); err != nil {
				return fmt.Errorf("error loading config file: %w", err)
			}

			if err := applyOverrideOverrides(f, k); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyOverrideOverrides for configuration values that need to be re-applied for each configuration item applied
func applyOverrideOverrides(f *flag.FlagSet, k *koanf.Koanf) error {
	// Apply command line options (again to overwrite provided files)
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return fmt.Errorf("error loading command line config: %w", err)
	}

	// Applying environment variables (again to overwrite provided files)
	if err := loadEnvironmentVariables(k); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	// Applying config string (again to overwrite provided files)
	if err := k.Load(rawbytes.Provider([]byte(k.String("conf.string"))), json.Parser()); err != nil {
		return fmt.Errorf("error loading config string config: %w", err)
	}

	return nil
}

var envvarsToSplitOnComma map[string]any = map[string]any{
	"conf.file": struct{}{},
}

func loadEnvironmentVariables(k *koanf.Koanf) error {
	envPrefix := k.String("conf.env-prefix")
	if len(envPrefix) != 0 {
		return k.Load(env.ProviderWithValue(envPrefix+"_", ".", func(key string, value string) (string, interface{}) {
			// FOO__BAR_BAZ gets transformed into foo.bar-baz
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix+"_"))
			key = strings.ReplaceAll(key, "__", ".")
			key = strings.ReplaceAll(key, "_", "-")

			if _, found := envvarsToSplitOnComma[key]; found {
				// If there are commas in the value, split the value into a slice.
				if strings.Contains(value, ",") {
					return key, strings.Split(value, ",")
				}
			}
			return key, value
		}), nil)
	}

	return nil
}

func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			vcsRevision, _, vcsTime := GetVersion()
			fmt.Printf("Version: %v, time: %v\n", vcsRevision, vcsTime)
			os.Exit(0)
		}
	}
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() != 0 {
		// Unexpected number of parameters
		return nil, errors.New("unexpected number of parameters")
	}

	var k = koanf.New(".")

	// Initial application of command line parameters and environment variables so other methods can be applied
	if err := ApplyOverrides(f, k); err != nil {
		return nil, err
	}

	return k, nil
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused: true,

		// Default values
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc()),
		Result:           config,
		WeaklyTypedInput: true,
	}
	err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig})
	if err != nil {
		return err
	}

	return nil
}

func DumpConfig(k *koanf.Koanf, extraOverrideFields map[string]interface{}) error {
	overrideFields := map[string]interface{}{"conf.dump": false}

	for fieldName, fieldValue := range extraOverrideFields {
		overrideFields[fieldName] = fieldValue
	}

	// Don't keep printing configuration file and don't print wallet passwords
	err := k.Load(confmap.Provider(overrideFields, "."), nil)
	if err != nil {
		return fmt.Errorf("error removing extra parameters before dump: %w", err)
	}

	return nil
}
