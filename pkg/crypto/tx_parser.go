package crypto

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/parser"
)

// Transaction versions with a known body layout.
const (
	TxVersionSprout     = 2
	TxVersionOverwinter = 3
	TxVersionSapling    = 4
	TxVersionNU5        = 5
)

// Proof sizes. Sprout JoinSplits carry PHGR13 proofs before Sapling and
// Groth16 proofs from v4 on.
const (
	phgrProofSize    = 296
	grothProofSize   = 192
	encCiphertextLen = 580
	outCiphertextLen = 80
	sproutCiphertext = 601
)

// Transaction is a parsed transaction. Only the fields needed to compute
// the transaction id and to locate note commitments are retained;
// proofs and signatures are skipped.
type Transaction struct {
	// Header is the raw first word: the version with the overwintered
	// flag in bit 31.
	Header            uint32
	Version           uint32
	Overwintered      bool
	VersionGroupID    uint32
	ConsensusBranchID uint32
	LockTime          uint32
	ExpiryHeight      uint32

	TransparentInputs  []TxIn
	TransparentOutputs []TxOut

	SaplingValueBalance int64
	SaplingSpends       []SaplingSpend
	SaplingOutputs      []SaplingOutput

	JoinSplits []JoinSplit

	OrchardActions      []OrchardAction
	OrchardFlags        uint8
	OrchardValueBalance int64
	OrchardAnchor       blob.U256

	raw []byte
}

// TxIn is a transparent input.
type TxIn struct {
	PrevoutTxID  blob.TxID
	PrevoutIndex uint32
	ScriptSig    []byte
	Sequence     uint32
}

// TxOut is a transparent output.
type TxOut struct {
	Value        int64
	ScriptPubKey []byte
}

// SaplingSpend is a Sapling spend description. v5 transactions share one
// anchor across all spends; it is copied into each spend here.
type SaplingSpend struct {
	CV        blob.U256
	Anchor    blob.U256
	Nullifier blob.U256
	Rk        blob.U256
}

// SaplingOutput is a Sapling output description.
type SaplingOutput struct {
	CV            blob.U256
	Cmu           blob.U256
	EphemeralKey  blob.U256
	EncCiphertext [encCiphertextLen]byte
	OutCiphertext [outCiphertextLen]byte
}

// JoinSplit is a Sprout JoinSplit description.
type JoinSplit struct {
	VPubOld     uint64
	VPubNew     uint64
	Anchor      blob.U256
	Nullifiers  [2]blob.U256
	Commitments [2]blob.U256
}

// OrchardAction is an Orchard action description.
type OrchardAction struct {
	CV            blob.U256
	Nullifier     blob.U256
	Rk            blob.U256
	Cmx           blob.U256
	EphemeralKey  blob.U256
	EncCiphertext [encCiphertextLen]byte
	OutCiphertext [outCiphertextLen]byte
}

// Raw returns the bytes the transaction was parsed from.
func (tx *Transaction) Raw() []byte {
	return tx.raw
}

// ParseTransaction parses a complete serialized transaction of version 1
// through 5. Trailing bytes are an error.
func ParseTransaction(data []byte) (*Transaction, error) {
	p := parser.New(data)
	tx := &Transaction{raw: data}

	header, err := p.ReadU32()
	if err != nil {
		return nil, parser.Field("header", err)
	}
	tx.Header = header
	tx.Overwintered = header>>31 == 1
	tx.Version = header & 0x7fffffff

	switch {
	case tx.Overwintered && tx.Version == TxVersionNU5:
		err = parseV5(p, tx)
	case tx.Overwintered && (tx.Version == TxVersionOverwinter || tx.Version == TxVersionSapling):
		err = parseOverwintered(p, tx)
	case !tx.Overwintered && tx.Version >= 1 && tx.Version <= TxVersionSprout:
		err = parseLegacy(p, tx)
	default:
		return nil, ierrors.Wrapf(ErrUnsupportedTransaction, "header 0x%08x", header)
	}
	if err != nil {
		return nil, err
	}

	if err := p.Finished(); err != nil {
		return nil, err
	}

	return tx, nil
}

// parseLegacy reads a v1 or v2 body.
func parseLegacy(p *parser.Parser, tx *Transaction) error {
	if err := parseTransparentBundle(p, tx); err != nil {
		return err
	}

	lockTime, err := p.ReadU32()
	if err != nil {
		return parser.Field("lock_time", err)
	}
	tx.LockTime = lockTime

	if tx.Version == TxVersionSprout {
		return parseJoinSplits(p, tx, phgrProofSize)
	}

	return nil
}

// parseOverwintered reads a v3 or v4 body.
func parseOverwintered(p *parser.Parser, tx *Transaction) error {
	var err error
	if tx.VersionGroupID, err = p.ReadU32(); err != nil {
		return parser.Field("version_group_id", err)
	}
	if err := parseTransparentBundle(p, tx); err != nil {
		return err
	}
	if tx.LockTime, err = p.ReadU32(); err != nil {
		return parser.Field("lock_time", err)
	}
	if tx.ExpiryHeight, err = p.ReadU32(); err != nil {
		return parser.Field("expiry_height", err)
	}

	if tx.Version == TxVersionOverwinter {
		return parseJoinSplits(p, tx, phgrProofSize)
	}

	if tx.SaplingValueBalance, err = p.ReadI64(); err != nil {
		return parser.Field("value_balance_sapling", err)
	}
	if err := parseSaplingV4(p, tx); err != nil {
		return err
	}
	if err := parseJoinSplits(p, tx, grothProofSize); err != nil {
		return err
	}
	if len(tx.SaplingSpends)+len(tx.SaplingOutputs) > 0 {
		if _, err := p.Next(64); err != nil {
			return parser.Field("binding_sig_sapling", err)
		}
	}

	return nil
}

// parseV5 reads a v5 body (ZIP 225).
func parseV5(p *parser.Parser, tx *Transaction) error {
	var err error
	if tx.VersionGroupID, err = p.ReadU32(); err != nil {
		return parser.Field("version_group_id", err)
	}
	if tx.ConsensusBranchID, err = p.ReadU32(); err != nil {
		return parser.Field("consensus_branch_id", err)
	}
	if tx.LockTime, err = p.ReadU32(); err != nil {
		return parser.Field("lock_time", err)
	}
	if tx.ExpiryHeight, err = p.ReadU32(); err != nil {
		return parser.Field("expiry_height", err)
	}

	if err := parseTransparentBundle(p, tx); err != nil {
		return err
	}
	if err := parseSaplingV5(p, tx); err != nil {
		return parser.Field("sapling", err)
	}
	if err := parseOrchard(p, tx); err != nil {
		return parser.Field("orchard", err)
	}

	return nil
}

func readHash(p *parser.Parser, name string) (blob.U256, error) {
	h, err := p.ReadBlob32()
	if err != nil {
		return blob.U256{}, parser.Field(name, err)
	}

	return h, nil
}

func readFixed(p *parser.Parser, name string, dst []byte) error {
	b, err := p.Next(len(dst))
	if err != nil {
		return parser.Field(name, err)
	}
	copy(dst, b)

	return nil
}

func skip(p *parser.Parser, name string, n int) error {
	_, err := p.Next(n)

	return parser.Field(name, err)
}

// readCount reads a compact-size element count bounded by what the rest
// of the buffer could hold.
func readCount(p *parser.Parser, name string, elemSize int) (int, error) {
	n, err := p.ReadLength()
	if err != nil {
		return 0, parser.Field(name, err)
	}
	if elemSize > 0 && n > p.Remaining()/elemSize {
		return 0, parser.Field(name, ierrors.Wrapf(parser.ErrBufferUnderrun, "%d elements of %d bytes", n, elemSize))
	}

	return n, nil
}

// parseTransparentBundle reads the transparent inputs and outputs.
func parseTransparentBundle(p *parser.Parser, tx *Transaction) error {
	numInputs, err := readCount(p, "tx_in_count", 41)
	if err != nil {
		return err
	}
	tx.TransparentInputs = make([]TxIn, numInputs)
	for i := range tx.TransparentInputs {
		if err := parseTxIn(p, &tx.TransparentInputs[i]); err != nil {
			return ierrors.Wrapf(err, "tx_in %d", i)
		}
	}

	numOutputs, err := readCount(p, "tx_out_count", 9)
	if err != nil {
		return err
	}
	tx.TransparentOutputs = make([]TxOut, numOutputs)
	for i := range tx.TransparentOutputs {
		if err := parseTxOut(p, &tx.TransparentOutputs[i]); err != nil {
			return ierrors.Wrapf(err, "tx_out %d", i)
		}
	}

	return nil
}

func parseTxIn(p *parser.Parser, txin *TxIn) error {
	if err := readFixed(p, "prevout_txid", txin.PrevoutTxID[:]); err != nil {
		return err
	}

	var err error
	if txin.PrevoutIndex, err = p.ReadU32(); err != nil {
		return parser.Field("prevout_index", err)
	}
	if txin.ScriptSig, err = p.ReadBytes(); err != nil {
		return parser.Field("script_sig", err)
	}
	if txin.Sequence, err = p.ReadU32(); err != nil {
		return parser.Field("sequence", err)
	}

	return nil
}

func parseTxOut(p *parser.Parser, txout *TxOut) error {
	var err error
	if txout.Value, err = p.ReadI64(); err != nil {
		return parser.Field("value", err)
	}
	if txout.ScriptPubKey, err = p.ReadBytes(); err != nil {
		return parser.Field("script_pubkey", err)
	}

	return nil
}

// parseJoinSplits reads the Sprout JoinSplit vector and, when it is not
// empty, the JoinSplit public key and signature.
func parseJoinSplits(p *parser.Parser, tx *Transaction, proofSize int) error {
	const fixed = 8 + 8 + 32 + 4*32 + 32 + 32 + 2*32 + 2*sproutCiphertext

	n, err := readCount(p, "joinsplit_count", fixed+proofSize)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	tx.JoinSplits = make([]JoinSplit, n)
	for i := range tx.JoinSplits {
		if err := parseJoinSplit(p, &tx.JoinSplits[i], proofSize); err != nil {
			return ierrors.Wrapf(err, "joinsplit %d", i)
		}
	}

	if err := skip(p, "joinsplit_pubkey", 32); err != nil {
		return err
	}

	return skip(p, "joinsplit_sig", 64)
}

func parseJoinSplit(p *parser.Parser, js *JoinSplit, proofSize int) error {
	var err error
	if js.VPubOld, err = p.ReadU64(); err != nil {
		return parser.Field("vpub_old", err)
	}
	if js.VPubNew, err = p.ReadU64(); err != nil {
		return parser.Field("vpub_new", err)
	}
	if js.Anchor, err = readHash(p, "anchor"); err != nil {
		return err
	}
	for i := range js.Nullifiers {
		if js.Nullifiers[i], err = readHash(p, "nullifier"); err != nil {
			return err
		}
	}
	for i := range js.Commitments {
		if js.Commitments[i], err = readHash(p, "commitment"); err != nil {
			return err
		}
	}

	// ephemeral key, random seed, two MACs, proof, two ciphertexts
	return skip(p, "joinsplit_body", 32+32+2*32+proofSize+2*sproutCiphertext)
}

// parseSaplingV4 reads v4 spend and output descriptions, each carrying
// its own anchor, proof and signature.
func parseSaplingV4(p *parser.Parser, tx *Transaction) error {
	numSpends, err := readCount(p, "spend_count", 384)
	if err != nil {
		return err
	}
	tx.SaplingSpends = make([]SaplingSpend, numSpends)
	for i := range tx.SaplingSpends {
		spend := &tx.SaplingSpends[i]
		for _, f := range []struct {
			name string
			dst  *blob.U256
		}{
			{"cv", &spend.CV},
			{"anchor", &spend.Anchor},
			{"nullifier", &spend.Nullifier},
			{"rk", &spend.Rk},
		} {
			if *f.dst, err = readHash(p, f.name); err != nil {
				return ierrors.Wrapf(err, "spend %d", i)
			}
		}
		if err := skip(p, "zkproof", grothProofSize+64); err != nil {
			return ierrors.Wrapf(err, "spend %d", i)
		}
	}

	numOutputs, err := readCount(p, "output_count", 948)
	if err != nil {
		return err
	}
	tx.SaplingOutputs = make([]SaplingOutput, numOutputs)
	for i := range tx.SaplingOutputs {
		if err := parseSaplingOutput(p, &tx.SaplingOutputs[i]); err != nil {
			return ierrors.Wrapf(err, "output %d", i)
		}
		if err := skip(p, "zkproof", grothProofSize); err != nil {
			return ierrors.Wrapf(err, "output %d", i)
		}
	}

	return nil
}

func parseSaplingOutput(p *parser.Parser, out *SaplingOutput) error {
	var err error
	if out.CV, err = readHash(p, "cv"); err != nil {
		return err
	}
	if out.Cmu, err = readHash(p, "cmu"); err != nil {
		return err
	}
	if out.EphemeralKey, err = readHash(p, "ephemeral_key"); err != nil {
		return err
	}
	if err := readFixed(p, "enc_ciphertext", out.EncCiphertext[:]); err != nil {
		return err
	}

	return readFixed(p, "out_ciphertext", out.OutCiphertext[:])
}

// parseSaplingV5 reads the v5 Sapling bundle: compact descriptions first,
// then the shared value balance and anchor, then proofs and signatures.
func parseSaplingV5(p *parser.Parser, tx *Transaction) error {
	numSpends, err := readCount(p, "spend_count", 96)
	if err != nil {
		return err
	}
	tx.SaplingSpends = make([]SaplingSpend, numSpends)
	for i := range tx.SaplingSpends {
		spend := &tx.SaplingSpends[i]
		if spend.CV, err = readHash(p, "cv"); err != nil {
			return ierrors.Wrapf(err, "spend %d", i)
		}
		if spend.Nullifier, err = readHash(p, "nullifier"); err != nil {
			return ierrors.Wrapf(err, "spend %d", i)
		}
		if spend.Rk, err = readHash(p, "rk"); err != nil {
			return ierrors.Wrapf(err, "spend %d", i)
		}
	}

	numOutputs, err := readCount(p, "output_count", 756)
	if err != nil {
		return err
	}
	tx.SaplingOutputs = make([]SaplingOutput, numOutputs)
	for i := range tx.SaplingOutputs {
		if err := parseSaplingOutput(p, &tx.SaplingOutputs[i]); err != nil {
			return ierrors.Wrapf(err, "output %d", i)
		}
	}

	if numSpends+numOutputs == 0 {
		return nil
	}

	if tx.SaplingValueBalance, err = p.ReadI64(); err != nil {
		return parser.Field("value_balance", err)
	}
	if numSpends > 0 {
		anchor, err := readHash(p, "anchor")
		if err != nil {
			return err
		}
		for i := range tx.SaplingSpends {
			tx.SaplingSpends[i].Anchor = anchor
		}
	}

	if err := skip(p, "spend_proofs", numSpends*grothProofSize); err != nil {
		return err
	}
	if err := skip(p, "spend_auth_sigs", numSpends*64); err != nil {
		return err
	}
	if err := skip(p, "output_proofs", numOutputs*grothProofSize); err != nil {
		return err
	}

	return skip(p, "binding_sig", 64)
}

// parseOrchard reads the v5 Orchard bundle.
func parseOrchard(p *parser.Parser, tx *Transaction) error {
	numActions, err := readCount(p, "action_count", 820)
	if err != nil {
		return err
	}
	if numActions == 0 {
		return nil
	}

	tx.OrchardActions = make([]OrchardAction, numActions)
	for i := range tx.OrchardActions {
		action := &tx.OrchardActions[i]
		for _, f := range []struct {
			name string
			dst  *blob.U256
		}{
			{"cv_net", &action.CV},
			{"nullifier", &action.Nullifier},
			{"rk", &action.Rk},
			{"cmx", &action.Cmx},
			{"ephemeral_key", &action.EphemeralKey},
		} {
			if *f.dst, err = readHash(p, f.name); err != nil {
				return ierrors.Wrapf(err, "action %d", i)
			}
		}
		if err := readFixed(p, "enc_ciphertext", action.EncCiphertext[:]); err != nil {
			return ierrors.Wrapf(err, "action %d", i)
		}
		if err := readFixed(p, "out_ciphertext", action.OutCiphertext[:]); err != nil {
			return ierrors.Wrapf(err, "action %d", i)
		}
	}

	if tx.OrchardFlags, err = p.ReadU8(); err != nil {
		return parser.Field("flags", err)
	}
	if tx.OrchardValueBalance, err = p.ReadI64(); err != nil {
		return parser.Field("value_balance", err)
	}
	if tx.OrchardAnchor, err = readHash(p, "anchor"); err != nil {
		return err
	}
	if _, err := p.ReadBytes(); err != nil {
		return parser.Field("proofs", err)
	}
	if err := skip(p, "spend_auth_sigs", numActions*64); err != nil {
		return err
	}

	return skip(p, "binding_sig", 64)
}
