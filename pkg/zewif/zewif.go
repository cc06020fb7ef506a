package zewif

import (
	"maps"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
)

// Zewif is the top-level container of an export. It owns the wallets and
// every transaction they refer to; accounts refer to transactions by id.
type Zewif struct {
	id                    blob.ARID
	wallets               []*ZewifWallet
	transactions          map[blob.TxID]*Transaction
	exportHeight          BlockHeight
	exportHeightBlockHash *blob.U256
	attachments           Attachments
}

// NewZewif returns an empty container with a fresh id.
func NewZewif(exportHeight BlockHeight) *Zewif {
	return &Zewif{
		id:           blob.NewARID(),
		transactions: make(map[blob.TxID]*Transaction),
		exportHeight: exportHeight,
	}
}

func (z *Zewif) ID() blob.ARID { return z.id }

func (z *Zewif) ExportHeight() BlockHeight { return z.exportHeight }

// ExportHeightBlockHash returns the hash of the block at the export
// height, or nil when it was not recorded.
func (z *Zewif) ExportHeightBlockHash() *blob.U256 { return z.exportHeightBlockHash }

func (z *Zewif) SetExportHeightBlockHash(hash blob.U256) { z.exportHeightBlockHash = &hash }

// Attachments returns the vendor attachments of the export. Callers may
// add to or remove from the returned set.
func (z *Zewif) Attachments() *Attachments { return &z.attachments }

func (z *Zewif) Wallets() []*ZewifWallet { return slices.Clone(z.wallets) }

// AddWallet appends w and assigns its index. It fails with
// ErrAlreadyOwned if w already belongs to a container.
func (z *Zewif) AddWallet(w *ZewifWallet) (err error) {
	z.wallets, err = appendIndexed(z.wallets, w)

	return err
}

// AddTransaction stores tx under its id, replacing any transaction
// already stored there.
func (z *Zewif) AddTransaction(tx *Transaction) {
	z.transactions[tx.TxID()] = tx
}

// Transaction returns the transaction with the given id, or nil.
func (z *Zewif) Transaction(txid blob.TxID) *Transaction {
	return z.transactions[txid]
}

// Transactions returns every transaction ordered by id.
func (z *Zewif) Transactions() []*Transaction {
	ids := slices.SortedFunc(maps.Keys(z.transactions), blob.TxID.Compare)
	txs := make([]*Transaction, len(ids))
	for i, id := range ids {
		txs[i] = z.transactions[id]
	}

	return txs
}

// SetTransactions replaces the stored transactions.
func (z *Zewif) SetTransactions(txs []*Transaction) {
	z.transactions = make(map[blob.TxID]*Transaction, len(txs))
	for _, tx := range txs {
		z.transactions[tx.TxID()] = tx
	}
}

func (z *Zewif) ToDocument() *document.Document {
	d := document.New(z.id).
		AddType(TagZewif).
		AddAssertions("wallet", document.Objects(z.wallets)...).
		AddAssertions("transaction", document.Objects(z.Transactions())...).
		AddAssertion("export_height", z.exportHeight).
		AddOptionalAssertion("export_height_block_hash", z.exportHeightBlockHash)

	return z.attachments.addTo(d)
}

func ZewifFromDocument(d *document.Document) (*Zewif, error) {
	if err := d.CheckType(TagZewif); err != nil {
		return nil, err
	}

	z := new(Zewif)

	var err error
	if z.id, err = document.ExtractSubject[blob.ARID](d); err != nil {
		return nil, ierrors.Wrap(err, "id")
	}
	if z.wallets, err = decodeIndexed(d, "wallet", ZewifWalletFromDocument); err != nil {
		return nil, err
	}

	txs, err := document.DecodeObjects(d, "transaction", TransactionFromDocument)
	if err != nil {
		return nil, err
	}
	z.transactions = make(map[blob.TxID]*Transaction, len(txs))
	for _, tx := range txs {
		if _, exists := z.transactions[tx.TxID()]; exists {
			return nil, ierrors.Wrapf(ErrDuplicateTransaction, "transaction: %s", tx.TxID())
		}
		z.transactions[tx.TxID()] = tx
	}

	if z.exportHeight, err = document.ExtractObject[BlockHeight](d, "export_height"); err != nil {
		return nil, err
	}
	if z.exportHeightBlockHash, err = document.ExtractOptionalObject[blob.U256](d, "export_height_block_hash"); err != nil {
		return nil, err
	}
	if z.attachments, err = attachmentsFromDocument(d); err != nil {
		return nil, ierrors.Wrap(err, "attachments")
	}

	return z, nil
}
