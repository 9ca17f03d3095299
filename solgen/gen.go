//
// Copyright 2021-2024, Offchain Labs, Inc. All rights reserved.
//

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Contracts the bridge client talks to, grouped by output package. The ABI
// files under abis/ are checked in verbatim from the contract repos they were
// compiled from.
var modules = map[string][]string{
	"bridgegen":         {"ERC20", "IDelayedMessageProvider", "IERC20Bridge", "IERC20Inbox"},
	"precompilesgen":    {"ArbRetryableTx"},
	"node_interfacegen": {"NodeInterface"},
}

func main() {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		log.Fatal("bad path")
	}
	root := filepath.Dir(filename)

	for module, contracts := range modules {
		var names []string
		var abis []string
		var bytecodes []string
		for _, name := range contracts {
			data, err := os.ReadFile(filepath.Join(root, "abis", name+".json"))
			if err != nil {
				log.Fatal("could not read abi for contract", name, err)
			}
			var parsed []interface{}
			if err := json.Unmarshal(data, &parsed); err != nil {
				log.Fatal("failed to parse abi for contract", name, err)
			}
			abi, err := json.Marshal(parsed)
			if err != nil {
				log.Fatal(err)
			}
			names = append(names, name)
			abis = append(abis, string(abi))
			bytecodes = append(bytecodes, "")
		}

		code, err := bind.Bind(
			names,
			abis,
			bytecodes,
			nil,
			module,
			bind.LangGo,
			nil,
			nil,
		)
		if err != nil {
			log.Fatal(err)
		}

		folder := filepath.Join(root, "go", module)

		err = os.MkdirAll(folder, 0o755)
		if err != nil {
			log.Fatal(err)
		}

		err = os.WriteFile(filepath.Join(folder, module+".go"), []byte(code), 0o644)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("successfully generated", len(modules), "binding packages")
}
