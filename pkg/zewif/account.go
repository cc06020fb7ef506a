package zewif

import (
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/document"
)

// Account groups the addresses of one spending authority with the
// transactions that touch them.
type Account struct {
	slot
	name                 string
	zip32AccountID       *uint32
	addresses            []*Address
	relevantTransactions []blob.TxID
	saplingSentOutputs   []*SaplingSentOutput
}

func NewAccount() *Account {
	return new(Account)
}

func (a *Account) Name() string { return a.name }

func (a *Account) SetName(name string) { a.name = name }

// ZIP32AccountID returns the ZIP 32 account number, or nil for accounts
// not derived from a seed.
func (a *Account) ZIP32AccountID() *uint32 { return a.zip32AccountID }

func (a *Account) SetZIP32AccountID(id uint32) { a.zip32AccountID = &id }

func (a *Account) Addresses() []*Address { return slices.Clone(a.addresses) }

// AddAddress appends addr and assigns its index. It fails with
// ErrAlreadyOwned if addr already belongs to an account.
func (a *Account) AddAddress(addr *Address) (err error) {
	a.addresses, err = appendIndexed(a.addresses, addr)

	return err
}

// RelevantTransactions returns the ids of the account's transactions in
// ascending byte order.
func (a *Account) RelevantTransactions() []blob.TxID {
	return slices.Clone(a.relevantTransactions)
}

// AddRelevantTransaction records txid. Duplicates are ignored.
func (a *Account) AddRelevantTransaction(txid blob.TxID) {
	i, found := slices.BinarySearchFunc(a.relevantTransactions, txid, blob.TxID.Compare)
	if !found {
		a.relevantTransactions = slices.Insert(a.relevantTransactions, i, txid)
	}
}

// IsRelevant reports whether txid is among the account's transactions.
func (a *Account) IsRelevant(txid blob.TxID) bool {
	_, found := slices.BinarySearchFunc(a.relevantTransactions, txid, blob.TxID.Compare)

	return found
}

func (a *Account) SaplingSentOutputs() []*SaplingSentOutput {
	return slices.Clone(a.saplingSentOutputs)
}

// AddSaplingSentOutput appends s and assigns its index.
func (a *Account) AddSaplingSentOutput(s *SaplingSentOutput) (err error) {
	a.saplingSentOutputs, err = appendIndexed(a.saplingSentOutputs, s)

	return err
}

func (a *Account) ToDocument() *document.Document {
	txids := make([]any, len(a.relevantTransactions))
	for i, txid := range a.relevantTransactions {
		txids[i] = txid
	}

	return document.New(a.index).
		AddType(TagAccount).
		AddAssertion("name", a.name).
		AddOptionalAssertion("zip32_account_id", a.zip32AccountID).
		AddAssertions("address", document.Objects(a.addresses)...).
		AddAssertions("relevant_transaction", txids...).
		AddAssertions("sapling_sent_output", document.Objects(a.saplingSentOutputs)...)
}

func AccountFromDocument(d *document.Document) (*Account, error) {
	if err := d.CheckType(TagAccount); err != nil {
		return nil, err
	}

	a := new(Account)

	var err error
	if a.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if a.name, err = document.ExtractObject[string](d, "name"); err != nil {
		return nil, err
	}
	if a.zip32AccountID, err = document.ExtractOptionalObject[uint32](d, "zip32_account_id"); err != nil {
		return nil, err
	}
	if a.addresses, err = decodeIndexed(d, "address", AddressFromDocument); err != nil {
		return nil, err
	}
	txids, err := document.ExtractObjects[blob.TxID](d, "relevant_transaction")
	if err != nil {
		return nil, err
	}
	for _, txid := range txids {
		a.AddRelevantTransaction(txid)
	}
	if a.saplingSentOutputs, err = decodeIndexed(d, "sapling_sent_output", SaplingSentOutputFromDocument); err != nil {
		return nil, err
	}

	return a, nil
}
