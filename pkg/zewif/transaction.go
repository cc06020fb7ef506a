package zewif

import (
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/crypto"
	"github.com/suffix-labs/zewif/pkg/document"
)

// Transaction is a transaction relevant to at least one wallet, with the
// shielded outputs the wallet tracks.
type Transaction struct {
	txid           blob.TxID
	raw            []byte
	minedHeight    *BlockHeight
	saplingOutputs []*SaplingOutputDescription
	orchardActions []*OrchardActionDescription
	joinSplits     []*JoinSplitDescription
}

func NewTransaction(txid blob.TxID) *Transaction {
	return &Transaction{txid: txid}
}

// TransactionFromRaw parses a serialized transaction and populates the
// id, the raw bytes and one description per Sapling output, Orchard
// action and Sprout JoinSplit it carries.
func TransactionFromRaw(raw []byte) (*Transaction, error) {
	parsed, err := crypto.ParseTransaction(raw)
	if err != nil {
		return nil, err
	}

	tx := NewTransaction(parsed.TxID())
	tx.raw = slices.Clone(raw)
	for _, out := range parsed.SaplingOutputs {
		if err := tx.AddSaplingOutput(NewSaplingOutputDescription(out.Cmu)); err != nil {
			return nil, err
		}
	}
	for _, action := range parsed.OrchardActions {
		if err := tx.AddOrchardAction(NewOrchardActionDescription(action.Cmx)); err != nil {
			return nil, err
		}
	}
	for _, js := range parsed.JoinSplits {
		if err := tx.AddJoinSplit(NewJoinSplitDescription(js.Anchor, js.Nullifiers[:], js.Commitments[:])); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

func (t *Transaction) TxID() blob.TxID { return t.txid }

// Raw returns the serialized transaction, or nil when it was not kept.
func (t *Transaction) Raw() []byte { return t.raw }

func (t *Transaction) SetRaw(raw []byte) { t.raw = slices.Clone(raw) }

// VerifyTxID checks that the raw bytes hash to the stored id. A
// transaction without raw bytes verifies trivially.
func (t *Transaction) VerifyTxID() error {
	if t.raw == nil {
		return nil
	}

	computed, err := crypto.TxID(t.raw)
	if err != nil {
		return ierrors.Wrap(err, "raw")
	}
	if computed != t.txid {
		return ierrors.Wrapf(ErrTxIDMismatch, "stored %s, computed %s", t.txid, computed)
	}

	return nil
}

// MinedHeight returns the height of the block that mined the
// transaction, or nil when it is unmined or unknown.
func (t *Transaction) MinedHeight() *BlockHeight { return t.minedHeight }

func (t *Transaction) SetMinedHeight(h BlockHeight) { t.minedHeight = &h }

func (t *Transaction) SaplingOutputs() []*SaplingOutputDescription {
	return slices.Clone(t.saplingOutputs)
}

// AddSaplingOutput appends o and assigns its index. It fails with
// ErrAlreadyOwned if o already belongs to a transaction.
func (t *Transaction) AddSaplingOutput(o *SaplingOutputDescription) (err error) {
	t.saplingOutputs, err = appendIndexed(t.saplingOutputs, o)

	return err
}

func (t *Transaction) OrchardActions() []*OrchardActionDescription {
	return slices.Clone(t.orchardActions)
}

// AddOrchardAction appends a and assigns its index.
func (t *Transaction) AddOrchardAction(a *OrchardActionDescription) (err error) {
	t.orchardActions, err = appendIndexed(t.orchardActions, a)

	return err
}

func (t *Transaction) JoinSplits() []*JoinSplitDescription {
	return slices.Clone(t.joinSplits)
}

// AddJoinSplit appends j and assigns its index.
func (t *Transaction) AddJoinSplit(j *JoinSplitDescription) (err error) {
	t.joinSplits, err = appendIndexed(t.joinSplits, j)

	return err
}

func (t *Transaction) ToDocument() *document.Document {
	return document.New(t.txid).
		AddType(TagTransaction).
		AddOptionalAssertion("raw", t.raw).
		AddOptionalAssertion("mined_height", t.minedHeight).
		AddAssertions("sapling_output", document.Objects(t.saplingOutputs)...).
		AddAssertions("orchard_action", document.Objects(t.orchardActions)...).
		AddAssertions("joinsplit", document.Objects(t.joinSplits)...)
}

func TransactionFromDocument(d *document.Document) (*Transaction, error) {
	if err := d.CheckType(TagTransaction); err != nil {
		return nil, err
	}

	t := new(Transaction)

	var err error
	if t.txid, err = document.ExtractSubject[blob.TxID](d); err != nil {
		return nil, ierrors.Wrap(err, "txid")
	}
	raw, err := document.ExtractOptionalObject[[]byte](d, "raw")
	if err != nil {
		return nil, err
	}
	if raw != nil {
		t.raw = *raw
	}
	if t.minedHeight, err = document.ExtractOptionalObject[BlockHeight](d, "mined_height"); err != nil {
		return nil, err
	}
	if t.saplingOutputs, err = decodeIndexed(d, "sapling_output", SaplingOutputDescriptionFromDocument); err != nil {
		return nil, err
	}
	if t.orchardActions, err = decodeIndexed(d, "orchard_action", OrchardActionDescriptionFromDocument); err != nil {
		return nil, err
	}
	if t.joinSplits, err = decodeIndexed(d, "joinsplit", JoinSplitDescriptionFromDocument); err != nil {
		return nil, err
	}

	return t, nil
}
