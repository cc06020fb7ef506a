package zewif

import (
	"slices"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/document"
)

// ZewifWallet is one wallet of an export: its network and accounts.
type ZewifWallet struct {
	slot
	network  Network
	accounts []*Account
}

func NewZewifWallet(network Network) *ZewifWallet {
	return &ZewifWallet{network: network}
}

func (w *ZewifWallet) Network() Network { return w.network }

func (w *ZewifWallet) Accounts() []*Account { return slices.Clone(w.accounts) }

// AddAccount appends a and assigns its index. It fails with
// ErrAlreadyOwned if a already belongs to a wallet.
func (w *ZewifWallet) AddAccount(a *Account) (err error) {
	w.accounts, err = appendIndexed(w.accounts, a)

	return err
}

func (w *ZewifWallet) ToDocument() *document.Document {
	return document.New(w.index).
		AddType(TagZewifWallet).
		AddAssertion("network", w.network).
		AddAssertions("account", document.Objects(w.accounts)...)
}

func ZewifWalletFromDocument(d *document.Document) (*ZewifWallet, error) {
	if err := d.CheckType(TagZewifWallet); err != nil {
		return nil, err
	}

	w := new(ZewifWallet)

	var err error
	if w.index, err = document.ExtractSubject[int](d); err != nil {
		return nil, ierrors.Wrap(err, "index")
	}
	if w.network, err = document.ExtractObject[Network](d, "network"); err != nil {
		return nil, err
	}
	if w.accounts, err = decodeIndexed(d, "account", AccountFromDocument); err != nil {
		return nil, err
	}

	return w, nil
}
