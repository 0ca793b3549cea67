package solana

import "encoding/binary"

// FindMasterEditionAddress returns the Metaplex master/print edition
// PDA for a mint: seeds ["metadata", token-metadata program, mint,
// "edition"].
func FindMasterEditionAddress(mint PublicKey) (PublicKey, uint8, error) {
	seed := [][]byte{
		[]byte("metadata"),
		TokenMetadataProgramID[:],
		mint[:],
		[]byte("edition"),
	}
	return FindProgramAddress(seed, TokenMetadataProgramID)
}

// FindBubblegumTreeAuthorityAddress returns the tree authority PDA for
// a given merkle tree account: seeds [merkle_tree], program =
// Bubblegum.
func FindBubblegumTreeAuthorityAddress(merkleTree PublicKey) (PublicKey, uint8, error) {
	return FindProgramAddress([][]byte{merkleTree[:]}, BubblegumProgramID)
}

// FindBubblegumAssetID derives the stable identity of a compressed NFT
// leaf from its tree and leaf index (nonce): seeds ["asset",
// merkle_tree, nonce_le], program = Bubblegum. Ported from
// mpl_bubblegum::utils::get_asset_id.
func FindBubblegumAssetID(merkleTree PublicKey, nonce uint64) (PublicKey, uint8, error) {
	nonceBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonceBytes, nonce)
	return FindProgramAddress([][]byte{
		[]byte("asset"),
		merkleTree[:],
		nonceBytes,
	}, BubblegumProgramID)
}
