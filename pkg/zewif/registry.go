package zewif

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/document"
	"github.com/suffix-labs/zewif/pkg/merkle"
)

// Registry decodes any zewif document by its type tag.
var Registry = newRegistry()

func newRegistry() *document.Registry {
	r := document.NewRegistry()

	document.Register(r, TagZewif, ZewifFromDocument)
	document.Register(r, TagZewifWallet, ZewifWalletFromDocument)
	document.Register(r, TagAccount, AccountFromDocument)
	document.Register(r, TagAddress, AddressFromDocument)
	document.Register(r, TagTransparentAddress, TransparentAddressFromDocument)
	document.Register(r, TagShieldedAddress, ShieldedAddressFromDocument)
	document.Register(r, TagUnifiedAddress, UnifiedAddressFromDocument)
	document.Register(r, TagTransaction, TransactionFromDocument)
	document.Register(r, TagSaplingOutputDescription, SaplingOutputDescriptionFromDocument)
	document.Register(r, TagOrchardActionDescription, OrchardActionDescriptionFromDocument)
	document.Register(r, TagJoinSplitDescription, JoinSplitDescriptionFromDocument)
	document.Register(r, TagSaplingSentOutput, SaplingSentOutputFromDocument)
	document.Register(r, TagSproutWitness, WitnessDecoder(ProtocolSprout))
	document.Register(r, TagSaplingWitness, WitnessDecoder(ProtocolSapling))
	document.Register(r, TagOrchardWitness, WitnessDecoder(ProtocolOrchard))
	document.Register(r, TagIncrementalMerkleTree, func(d *document.Document) (*merkle.Tree, error) {
		depth, err := document.ExtractSubject[int](d)
		if err != nil {
			return nil, err
		}
		if depth < 1 || depth > merkle.MaxDepth {
			return nil, ierrors.Wrapf(document.ErrMalformedDocument, "tree depth %d", depth)
		}

		return TreeFromDocument(d, depth)
	})

	return r
}

// Decode decodes d with the decoder registered for its type tag.
func Decode(d *document.Document) (any, error) {
	return Registry.Decode(d)
}
