// Copyright 2021 github.com/gagliardetto
// This file has been modified by github.com/gagliardetto
//
// Copyright 2020 dfuse Platform Inc.
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

package token

import (
	"bytes"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

const ProgramName = "Token"

var ProgramID = solana.TokenProgramID

func SetProgramID(pubkey solana.PublicKey) {
	ProgramID = pubkey
}

const (
	Instruction_InitializeMint uint32 = iota
	Instruction_InitializeAccount
	Instruction_InitializeMultisig
	Instruction_Transfer
	Instruction_Approve
	Instruction_Revoke
	Instruction_SetAuthority
	Instruction_MintTo
	Instruction_Burn
	Instruction_CloseAccount
	Instruction_FreezeAccount
	Instruction_ThawAccount
	Instruction_TransferChecked
	Instruction_ApproveChecked
	Instruction_MintToChecked
	Instruction_BurnChecked
)

type Instruction struct {
	ag_binary.BaseVariant
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() (out []*solana.AccountMeta) {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := ag_binary.NewBinEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *Instruction) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	err := encoder.WriteUint8(uint8(inst.TypeID.Uint32()))
	if err != nil {
		return fmt.Errorf("unable to write variant type: %w", err)
	}
	return encoder.Encode(inst.Impl)
}
