package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/parser"
)

// ZIP 244 personalization strings for BLAKE2b-256.
const (
	// Transaction ID personalization (12 bytes prefix + 4 bytes branch ID)
	TxIDPersonalizationPrefix = "ZcashTxHash_"

	HeaderDigestPersonalization      = "ZTxIdHeadersHash"
	TransparentDigestPersonalization = "ZTxIdTranspaHash"
	SaplingDigestPersonalization     = "ZTxIdSaplingHash"
	OrchardDigestPersonalization     = "ZTxIdOrchardHash"

	PrevoutDigestPersonalization  = "ZTxIdPrevoutHash"
	SequenceDigestPersonalization = "ZTxIdSequencHash"
	OutputsDigestPersonalization  = "ZTxIdOutputsHash"

	SaplingSpendsDigestPersonalization      = "ZTxIdSSpendsHash"
	SaplingSpendsCompactPersonalization     = "ZTxIdSSpendCHash"
	SaplingSpendsNoncompactPersonalization  = "ZTxIdSSpendNHash"
	SaplingOutputsDigestPersonalization     = "ZTxIdSOutputHash"
	SaplingOutputsCompactPersonalization    = "ZTxIdSOutC__Hash"
	SaplingOutputsMemosPersonalization      = "ZTxIdSOutM__Hash"
	SaplingOutputsNoncompactPersonalization = "ZTxIdSOutN__Hash"

	OrchardActionsCompactPersonalization    = "ZTxIdOrcActCHash"
	OrchardActionsMemosPersonalization      = "ZTxIdOrcActMHash"
	OrchardActionsNoncompactPersonalization = "ZTxIdOrcActNHash"
)

// Split points of a note ciphertext: the compact part that light clients
// download, the memo, and the authentication tag.
const (
	compactCiphertextEnd = 52
	memoCiphertextEnd    = 564
)

// blake2bNew256 returns a BLAKE2b-256 hash with the given personalization.
func blake2bNew256(personalization []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: 32, Person: personalization})
	if err != nil {
		panic("crypto: blake2b: " + err.Error())
	}

	return h
}

func personalized(personalization string) hash.Hash {
	return blake2bNew256([]byte(personalization))
}

func sum32(h hash.Hash) [32]byte {
	var digest [32]byte
	copy(digest[:], h.Sum(nil))

	return digest
}

// TxDigests holds the four ZIP 244 component digests of a v5 transaction.
type TxDigests struct {
	HeaderDigest      [32]byte
	TransparentDigest [32]byte
	SaplingDigest     [32]byte
	OrchardDigest     [32]byte
}

// TxID computes the transaction id: the ZIP 244 digest for v5
// transactions, double SHA-256 of the raw encoding otherwise.
func (tx *Transaction) TxID() blob.TxID {
	if tx.Version < TxVersionNU5 {
		return blob.TxIDFromBytes(sha256d(tx.raw))
	}

	digests := tx.Digests()

	// TXID = BLAKE2b-256("ZcashTxHash_" || branch_id, header || transparent || sapling || orchard)
	personalization := make([]byte, 16)
	copy(personalization, TxIDPersonalizationPrefix)
	binary.LittleEndian.PutUint32(personalization[12:], tx.ConsensusBranchID)

	h := blake2bNew256(personalization)
	h.Write(digests.HeaderDigest[:])
	h.Write(digests.TransparentDigest[:])
	h.Write(digests.SaplingDigest[:])
	h.Write(digests.OrchardDigest[:])

	return blob.TxIDFromBytes(sum32(h))
}

// TxID parses raw and returns its transaction id.
func TxID(raw []byte) (blob.TxID, error) {
	tx, err := ParseTransaction(raw)
	if err != nil {
		return blob.TxID{}, err
	}

	return tx.TxID(), nil
}

func sha256d(data []byte) [32]byte {
	first := sha256.Sum256(data)

	return sha256.Sum256(first[:])
}

// Digests computes the ZIP 244 component digests.
func (tx *Transaction) Digests() TxDigests {
	return TxDigests{
		HeaderDigest:      tx.headerDigest(),
		TransparentDigest: tx.transparentDigest(),
		SaplingDigest:     tx.saplingDigest(),
		OrchardDigest:     tx.orchardDigest(),
	}
}

// T.1: header_digest
func (tx *Transaction) headerDigest() [32]byte {
	h := personalized(HeaderDigestPersonalization)
	for _, v := range []uint32{tx.Header, tx.VersionGroupID, tx.ConsensusBranchID, tx.LockTime, tx.ExpiryHeight} {
		_ = binary.Write(h, binary.LittleEndian, v)
	}

	return sum32(h)
}

// T.2: transparent_digest = BLAKE2b-256("ZTxIdTranspaHash", prevouts || sequence || outputs)
func (tx *Transaction) transparentDigest() [32]byte {
	h := personalized(TransparentDigestPersonalization)
	if len(tx.TransparentInputs) == 0 && len(tx.TransparentOutputs) == 0 {
		return sum32(h)
	}

	prevouts := personalized(PrevoutDigestPersonalization)
	sequences := personalized(SequenceDigestPersonalization)
	for _, in := range tx.TransparentInputs {
		prevouts.Write(in.PrevoutTxID[:])
		_ = binary.Write(prevouts, binary.LittleEndian, in.PrevoutIndex)
		_ = binary.Write(sequences, binary.LittleEndian, in.Sequence)
	}

	outputs := personalized(OutputsDigestPersonalization)
	for _, out := range tx.TransparentOutputs {
		_ = binary.Write(outputs, binary.LittleEndian, out.Value)
		outputs.Write(parser.AppendCompactSize(nil, uint64(len(out.ScriptPubKey))))
		outputs.Write(out.ScriptPubKey)
	}

	for _, d := range []hash.Hash{prevouts, sequences, outputs} {
		digest := sum32(d)
		h.Write(digest[:])
	}

	return sum32(h)
}

// T.3: sapling_digest
func (tx *Transaction) saplingDigest() [32]byte {
	h := personalized(SaplingDigestPersonalization)
	if len(tx.SaplingSpends) == 0 && len(tx.SaplingOutputs) == 0 {
		return sum32(h)
	}

	spends := saplingSpendsDigest(tx.SaplingSpends)
	outputs := saplingOutputsDigest(tx.SaplingOutputs)
	h.Write(spends[:])
	h.Write(outputs[:])
	_ = binary.Write(h, binary.LittleEndian, tx.SaplingValueBalance)

	return sum32(h)
}

func saplingSpendsDigest(spends []SaplingSpend) [32]byte {
	h := personalized(SaplingSpendsDigestPersonalization)
	if len(spends) == 0 {
		return sum32(h)
	}

	compact := personalized(SaplingSpendsCompactPersonalization)
	noncompact := personalized(SaplingSpendsNoncompactPersonalization)
	for _, spend := range spends {
		compact.Write(spend.Nullifier[:])

		noncompact.Write(spend.CV[:])
		noncompact.Write(spend.Anchor[:])
		noncompact.Write(spend.Rk[:])
	}

	c, n := sum32(compact), sum32(noncompact)
	h.Write(c[:])
	h.Write(n[:])

	return sum32(h)
}

func saplingOutputsDigest(outputs []SaplingOutput) [32]byte {
	h := personalized(SaplingOutputsDigestPersonalization)
	if len(outputs) == 0 {
		return sum32(h)
	}

	compact := personalized(SaplingOutputsCompactPersonalization)
	memos := personalized(SaplingOutputsMemosPersonalization)
	noncompact := personalized(SaplingOutputsNoncompactPersonalization)
	for _, out := range outputs {
		compact.Write(out.Cmu[:])
		compact.Write(out.EphemeralKey[:])
		compact.Write(out.EncCiphertext[:compactCiphertextEnd])

		memos.Write(out.EncCiphertext[compactCiphertextEnd:memoCiphertextEnd])

		noncompact.Write(out.CV[:])
		noncompact.Write(out.EncCiphertext[memoCiphertextEnd:])
		noncompact.Write(out.OutCiphertext[:])
	}

	for _, d := range []hash.Hash{compact, memos, noncompact} {
		digest := sum32(d)
		h.Write(digest[:])
	}

	return sum32(h)
}

// T.4: orchard_digest
func (tx *Transaction) orchardDigest() [32]byte {
	h := personalized(OrchardDigestPersonalization)
	if len(tx.OrchardActions) == 0 {
		return sum32(h)
	}

	compact := personalized(OrchardActionsCompactPersonalization)
	memos := personalized(OrchardActionsMemosPersonalization)
	noncompact := personalized(OrchardActionsNoncompactPersonalization)
	for _, action := range tx.OrchardActions {
		compact.Write(action.Nullifier[:])
		compact.Write(action.Cmx[:])
		compact.Write(action.EphemeralKey[:])
		compact.Write(action.EncCiphertext[:compactCiphertextEnd])

		memos.Write(action.EncCiphertext[compactCiphertextEnd:memoCiphertextEnd])

		noncompact.Write(action.CV[:])
		noncompact.Write(action.Rk[:])
		noncompact.Write(action.EncCiphertext[memoCiphertextEnd:])
		noncompact.Write(action.OutCiphertext[:])
	}

	for _, d := range []hash.Hash{compact, memos, noncompact} {
		digest := sum32(d)
		h.Write(digest[:])
	}
	h.Write([]byte{tx.OrchardFlags})
	_ = binary.Write(h, binary.LittleEndian, tx.OrchardValueBalance)
	h.Write(tx.OrchardAnchor[:])

	return sum32(h)
}
