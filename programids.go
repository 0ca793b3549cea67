// Copyright 2021 github.com/gagliardetto
// This file has been modified by github.com/gagliardetto

package solana

// Well-known native and program ids used throughout PDA derivation and
// instruction assembly. Native ids are ported from
// https://github.com/solana-labs/solana/blob/master/sdk/program/src/.
var (
	BPFLoaderProgramID           = MustPublicKeyFromBase58("BPFLoader2111111111111111111111111111111111")
	BPFLoaderDeprecatedProgramID = MustPublicKeyFromBase58("BPFLoader1111111111111111111111111111111111")
	FeatureProgramID             = MustPublicKeyFromBase58("Feature111111111111111111111111111111111111")
	ConfigProgramID              = MustPublicKeyFromBase58("Config1111111111111111111111111111111111111")
	StakeProgramID               = MustPublicKeyFromBase58("Stake11111111111111111111111111111111111111")
	VoteProgramID                = MustPublicKeyFromBase58("Vote111111111111111111111111111111111111111")
	Secp256k1ProgramID           = MustPublicKeyFromBase58("KeccakSecp256k11111111111111111111111111111")
	SystemProgramID              = MustPublicKeyFromBase58("11111111111111111111111111111111")

	SysVarClockPubkey             = MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	SysVarEpochSchedulePubkey     = MustPublicKeyFromBase58("SysvarEpochSchedu1e111111111111111111111111")
	SysVarFeesPubkey              = MustPublicKeyFromBase58("SysvarFees111111111111111111111111111111111")
	SysVarInstructionsPubkey      = MustPublicKeyFromBase58("Sysvar1nstructions1111111111111111111111111")
	SysVarRecentBlockHashesPubkey = MustPublicKeyFromBase58("SysvarRecentB1ockHashes11111111111111111111")
	SysVarRentPubkey              = MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
	SysVarRewardsPubkey           = MustPublicKeyFromBase58("SysvarRewards111111111111111111111111111111")
	SysVarSlotHashesPubkey        = MustPublicKeyFromBase58("SysvarS1otHashes111111111111111111111111111")
	SysVarSlotHistoryPubkey       = MustPublicKeyFromBase58("SysvarS1otHistory11111111111111111111111111")
	SysVarStakeHistoryPubkey      = MustPublicKeyFromBase58("SysvarStakeHistory1111111111111111111111111")

	// TokenProgramID is the SPL Token program.
	TokenProgramID = MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	// SPLAssociatedTokenAccountProgramID derives and creates associated token accounts.
	SPLAssociatedTokenAccountProgramID = MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

	// TokenMetadataProgramID is the Metaplex Token Metadata program.
	TokenMetadataProgramID = MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

	// BubblegumProgramID is the Metaplex Bubblegum (compressed NFT) program.
	BubblegumProgramID = MustPublicKeyFromBase58("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")

	// SPLNoopProgramID is the program used to emit application/changelog events via CPI logs.
	SPLNoopProgramID = MustPublicKeyFromBase58("noopb9bkMVfRPU8ASbpTUg8AQkHtKwMYZiFUjNRtMmV")

	// SPLAccountCompressionProgramID manages the concurrent merkle trees backing compressed NFTs.
	SPLAccountCompressionProgramID = MustPublicKeyFromBase58("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")
)
