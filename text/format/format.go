// Copyright 2021 github.com/gagliardetto
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package format renders instruction debug trees for EncodeToTree,
// used by `solana inspect`-style tooling to print a decoded
// transaction's instructions and accounts.
package format

import (
	"fmt"

	"github.com/fatih/color"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

var (
	programColor     = color.New(color.FgHiMagenta, color.Bold).SprintFunc()
	instructionColor = color.New(color.FgHiBlue, color.Bold).SprintFunc()
	paramColor       = color.New(color.FgWhite).SprintFunc()
	accountColor     = color.New(color.FgGreen).SprintFunc()
	signerColor      = color.New(color.FgHiYellow).SprintFunc()
)

func Program(name string, programID solana.PublicKey) string {
	return fmt.Sprintf("%s: %s", programColor(name), programID.String())
}

func Instruction(name string) string {
	return instructionColor(name)
}

func Param(name string, value interface{}) string {
	return fmt.Sprintf("%s: %s", name, paramColor(fmt.Sprintf("%v", value)))
}

func Account(name string, pubkey solana.PublicKey) string {
	return fmt.Sprintf("%s: %s", name, accountColor(pubkey.String()))
}

func Meta(name string, meta *solana.AccountMeta) string {
	if meta == nil {
		return fmt.Sprintf("%s: <nil>", name)
	}
	flags := ""
	if meta.IsWritable {
		flags += "WRITE"
	}
	if meta.IsSigner {
		if flags != "" {
			flags += ", "
		}
		flags += "SIGNER"
	}
	addr := meta.PublicKey.String()
	if meta.IsSigner {
		addr = signerColor(addr)
	} else {
		addr = accountColor(addr)
	}
	if flags == "" {
		return fmt.Sprintf("%s: %s", name, addr)
	}
	return fmt.Sprintf("%s: %s [%s]", name, addr, flags)
}
