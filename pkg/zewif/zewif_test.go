package zewif

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/zewif/pkg/blob"
	"github.com/suffix-labs/zewif/pkg/crypto"
	"github.com/suffix-labs/zewif/pkg/document"
	"github.com/suffix-labs/zewif/pkg/merkle"
	"github.com/suffix-labs/zewif/pkg/parser"
)

const (
	mainnetP2PKH = "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs"
	mainnetP2SH  = "t3VEtV2oBtHxjq7wKHJb3PHsqXHvMRgUmVw"
	testnetP2PKH = "tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs"
)

var testHasher = merkle.MustBlake2bHasher("ZewifTestsMerkle", blob.U256{})

// checkRoundTrip encodes v to its wire form, decodes it back and checks
// that re-encoding reproduces the same bytes.
func checkRoundTrip[T document.Encodable](t *testing.T, v T, decode document.DecodeFunc[T]) T {
	t.Helper()

	data, err := document.Marshal(v.ToDocument())
	require.NoError(t, err)

	parsed, err := document.Unmarshal(data)
	require.NoError(t, err)

	decoded, err := decode(parsed)
	require.NoError(t, err)

	again, err := document.Marshal(decoded.ToDocument())
	require.NoError(t, err)
	assert.Equal(t, data, again, "wire form changed across round trip")

	return decoded
}

func randU256(r *rand.Rand) (u blob.U256) {
	for i := range u {
		u[i] = byte(r.Uint32())
	}

	return u
}

func randBlob11(r *rand.Rand) (b blob.Blob11) {
	for i := range b {
		b[i] = byte(r.Uint32())
	}

	return b
}

func randTxID(r *rand.Rand) blob.TxID {
	return blob.TxIDFromBytes(randU256(r))
}

// witnessAt builds a witness for position in a tree of the protocol's
// depth, advanced by extra leaves.
func witnessAt(t *testing.T, r *rand.Rand, protocol Protocol, position, extra int) *Witness {
	t.Helper()

	h, ok := protocol.Hasher()
	if !ok {
		h = testHasher
	}

	tree := merkle.NewTree(protocol.Depth())
	for range position + 1 {
		require.NoError(t, tree.Append(h, randU256(r)))
	}

	mw, err := merkle.NewWitness(tree)
	require.NoError(t, err)
	for range extra {
		require.NoError(t, mw.Append(h, randU256(r)))
	}

	w, err := NewWitness(protocol, mw)
	require.NoError(t, err)

	return w
}

func randProtocolAddress(r *rand.Rand) ProtocolAddress {
	switch r.IntN(3) {
	case 0:
		return NewTransparentAddress([]string{mainnetP2PKH, mainnetP2SH}[r.IntN(2)])
	case 1:
		a := NewShieldedAddress(fmt.Sprintf("zs1%x", randU256(r).Bytes()))
		if r.IntN(2) == 0 {
			a.SetDiversifier(randBlob11(r))
		}

		return a
	default:
		a := NewUnifiedAddress(fmt.Sprintf("u1%x", randU256(r).Bytes()))
		for range r.IntN(4) {
			a.AddReceiverType(ReceiverType(r.IntN(4)))
		}
		if r.IntN(2) == 0 {
			a.SetDiversifierIndex(randBlob11(r))
		}

		return a
	}
}

func randAccount(t *testing.T, r *rand.Rand, txids []blob.TxID) *Account {
	t.Helper()

	a := NewAccount()
	a.SetName(fmt.Sprintf("account-%d", r.IntN(1000)))
	if r.IntN(2) == 0 {
		a.SetZIP32AccountID(r.Uint32())
	}
	for i := range r.IntN(5) {
		addr := NewAddress(randProtocolAddress(r))
		addr.SetName(fmt.Sprintf("address-%d", i))
		if r.IntN(2) == 0 {
			addr.SetPurpose("receive")
		}
		if r.IntN(3) == 0 {
			addr.Attachments().Add(randU256(r), "com.example.wallet", nil)
		}
		require.NoError(t, a.AddAddress(addr))
	}
	for _, txid := range txids {
		if r.IntN(2) == 0 {
			a.AddRelevantTransaction(txid)
		}
	}
	for range r.IntN(3) {
		s := NewSaplingSentOutput()
		s.SetDiversifier(randBlob11(r))
		s.SetRecipientPublicKey(randU256(r))
		s.SetValue(MustAmount(r.Int64N(MaxMoney)))
		s.SetRcm(randU256(r))
		require.NoError(t, a.AddSaplingSentOutput(s))
	}

	return a
}

func randTransaction(t *testing.T, r *rand.Rand) *Transaction {
	tx := NewTransaction(randTxID(r))
	if r.IntN(2) == 0 {
		tx.SetMinedHeight(BlockHeight(r.Uint32N(3_000_000)))
	}
	for range r.IntN(3) {
		o := NewSaplingOutputDescription(randU256(r))
		if r.IntN(2) == 0 {
			o.SetPosition(Position(r.Uint32N(1000)))
			require.NoError(t, o.SetWitness(witnessAt(t, r, ProtocolSapling, r.IntN(4), r.IntN(4))))
		}
		require.NoError(t, tx.AddSaplingOutput(o))
	}
	for range r.IntN(3) {
		a := NewOrchardActionDescription(randU256(r))
		if r.IntN(2) == 0 {
			a.SetPosition(Position(r.Uint32N(1000)))
			require.NoError(t, a.SetWitness(witnessAt(t, r, ProtocolOrchard, r.IntN(4), r.IntN(4))))
		}
		require.NoError(t, tx.AddOrchardAction(a))
	}
	for range r.IntN(2) {
		j := NewJoinSplitDescription(randU256(r),
			[]blob.U256{randU256(r), randU256(r)},
			[]blob.U256{randU256(r), randU256(r)})
		if r.IntN(2) == 0 {
			require.NoError(t, j.SetWitness(witnessAt(t, r, ProtocolSprout, r.IntN(4), r.IntN(4))))
		}
		require.NoError(t, tx.AddJoinSplit(j))
	}

	return tx
}

func randZewif(t *testing.T, r *rand.Rand) *Zewif {
	z := NewZewif(BlockHeight(r.Uint32N(3_000_000)))
	if r.IntN(2) == 0 {
		z.SetExportHeightBlockHash(randU256(r))
	}
	for range r.IntN(3) {
		z.Attachments().Add(fmt.Sprintf("note-%d", r.IntN(1000)), "com.example.wallet", nil)
	}

	var txids []blob.TxID
	for range r.IntN(4) {
		tx := randTransaction(t, r)
		z.AddTransaction(tx)
		txids = append(txids, tx.TxID())
	}
	for range 1 + r.IntN(2) {
		w := NewZewifWallet(Network(r.IntN(3)))
		for range r.IntN(3) {
			require.NoError(t, w.AddAccount(randAccount(t, r, txids)))
		}
		require.NoError(t, z.AddWallet(w))
	}

	return z
}

func TestZewifRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 25 {
		z := randZewif(t, r)
		decoded := checkRoundTrip(t, z, ZewifFromDocument)

		assert.Equal(t, z.ID(), decoded.ID())
		assert.Equal(t, z.ExportHeight(), decoded.ExportHeight())
		assert.Equal(t, z.ExportHeightBlockHash(), decoded.ExportHeightBlockHash())
		assert.True(t, document.Equal(z.ToDocument(), decoded.ToDocument()))
		require.Len(t, decoded.Wallets(), len(z.Wallets()))
		for i, w := range decoded.Wallets() {
			assert.Equal(t, i, w.Index())
			assert.Equal(t, z.Wallets()[i].Network(), w.Network())
		}
		require.Len(t, decoded.Transactions(), len(z.Transactions()))
		for _, tx := range z.Transactions() {
			assert.NotNil(t, decoded.Transaction(tx.TxID()))
		}
	}
}

func TestZewifExportScenario(t *testing.T) {
	z := NewZewif(2_000_000)
	w1 := NewZewifWallet(NetworkMain)
	w2 := NewZewifWallet(NetworkTest)
	require.NoError(t, z.AddWallet(w1))
	require.NoError(t, z.AddWallet(w2))

	assert.Equal(t, 0, w1.Index())
	assert.Equal(t, 1, w2.Index())

	decoded := checkRoundTrip(t, z, ZewifFromDocument)
	assert.Equal(t, BlockHeight(2_000_000), decoded.ExportHeight())
	assert.Nil(t, decoded.ExportHeightBlockHash())
	assert.Empty(t, decoded.Transactions())

	wallets := decoded.Wallets()
	require.Len(t, wallets, 2)
	assert.Equal(t, 0, wallets[0].Index())
	assert.Equal(t, NetworkMain, wallets[0].Network())
	assert.Equal(t, 1, wallets[1].Index())
	assert.Equal(t, NetworkTest, wallets[1].Network())
}

func TestSaplingSentOutputScenario(t *testing.T) {
	for _, value := range []int64{5_000_000, 0} {
		s := NewSaplingSentOutput()
		s.SetRecipientPublicKey(blob.MustBlob32FromHex("0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"))
		s.SetValue(MustAmount(value))

		decoded := checkRoundTrip(t, s, SaplingSentOutputFromDocument)
		assert.Equal(t, s, decoded)
		assert.True(t, decoded.Diversifier().IsZero())
		assert.True(t, decoded.Rcm().IsZero())
		assert.Equal(t, value, decoded.Value().Zats())
	}
}

func TestSaplingSentOutputPredicateSpelling(t *testing.T) {
	d := NewSaplingSentOutput().ToDocument()

	assert.Len(t, d.AssertionsWithPredicate("receipient_public_key"), 1)
	assert.Empty(t, d.AssertionsWithPredicate("recipient_public_key"))
}

func TestIndexedOrderingRecovered(t *testing.T) {
	for _, k := range []int{0, 1, 17} {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			a := NewAccount()
			a.SetName("ordering")
			for i := range k {
				addr := NewAddress(NewShieldedAddress(fmt.Sprintf("zs1-%02d", i)))
				addr.SetName(fmt.Sprintf("address-%02d", i))
				require.NoError(t, a.AddAddress(addr))
			}

			decoded := checkRoundTrip(t, a, AccountFromDocument)
			addresses := decoded.Addresses()
			require.Len(t, addresses, k)
			for i, addr := range addresses {
				assert.Equal(t, i, addr.Index())
				assert.Equal(t, fmt.Sprintf("address-%02d", i), addr.Name())
				assert.Equal(t, fmt.Sprintf("zs1-%02d", i), addr.AsString())
			}
		})
	}
}

func TestPositionsAreClaimedOnce(t *testing.T) {
	z := NewZewif(1)
	w1, w2 := NewZewifWallet(NetworkMain), NewZewifWallet(NetworkTest)
	require.NoError(t, z.AddWallet(w1))
	require.NoError(t, z.AddWallet(w2))
	require.ErrorIs(t, z.AddWallet(w1), ErrAlreadyOwned)
	require.ErrorIs(t, NewZewif(1).AddWallet(w2), ErrAlreadyOwned)
	assert.Equal(t, 0, w1.Index())
	assert.Equal(t, 1, w2.Index())
	assert.Len(t, z.Wallets(), 2)
	checkRoundTrip(t, z, ZewifFromDocument)

	a1, a2 := NewAccount(), NewAccount()
	x := NewAddress(NewTransparentAddress(mainnetP2PKH))
	y := NewAddress(NewTransparentAddress(mainnetP2SH))
	require.NoError(t, a1.AddAddress(x))
	require.NoError(t, a1.AddAddress(y))
	require.ErrorIs(t, a2.AddAddress(y), ErrAlreadyOwned)
	assert.Empty(t, a2.Addresses())

	decoded := checkRoundTrip(t, a1, AccountFromDocument)
	addresses := decoded.Addresses()
	require.Len(t, addresses, 2)
	assert.Equal(t, 0, addresses[0].Index())
	assert.Equal(t, 1, addresses[1].Index())
	require.ErrorIs(t, a2.AddAddress(addresses[1]), ErrAlreadyOwned)

	standalone, err := AddressFromDocument(x.ToDocument())
	require.NoError(t, err)
	require.NoError(t, a2.AddAddress(standalone))
	assert.Equal(t, 0, standalone.Index())

	tx := NewTransaction(blob.TxID{7})
	o := NewSaplingOutputDescription(blob.U256{1})
	require.NoError(t, tx.AddSaplingOutput(o))
	require.ErrorIs(t, NewTransaction(blob.TxID{8}).AddSaplingOutput(o), ErrAlreadyOwned)
}

func TestRelevantTransactionsDecodedSorted(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	a := NewAccount()
	var txids []blob.TxID
	for range 10 {
		txid := randTxID(r)
		txids = append(txids, txid)
		a.AddRelevantTransaction(txid)
	}
	a.AddRelevantTransaction(txids[0])

	decoded := checkRoundTrip(t, a, AccountFromDocument)
	got := decoded.RelevantTransactions()
	require.Len(t, got, 10)
	for i := 1; i < len(got); i++ {
		assert.Negative(t, got[i-1].Compare(got[i]))
	}
	for _, txid := range txids {
		assert.True(t, decoded.IsRelevant(txid))
	}
}

func TestOptionalAssertionsOmitted(t *testing.T) {
	addr := NewAddress(NewTransparentAddress(mainnetP2PKH))
	d := addr.ToDocument()
	assert.Empty(t, d.AssertionsWithPredicate("purpose"))

	addr.SetPurpose("change")
	assert.Len(t, addr.ToDocument().AssertionsWithPredicate("purpose"), 1)

	tx := NewTransaction(blob.TxID{1})
	d = tx.ToDocument()
	assert.Empty(t, d.AssertionsWithPredicate("raw"))
	assert.Empty(t, d.AssertionsWithPredicate("mined_height"))

	decoded := checkRoundTrip(t, tx, TransactionFromDocument)
	assert.Nil(t, decoded.Raw())
	assert.Nil(t, decoded.MinedHeight())

	a := NewAccount()
	assert.Empty(t, a.ToDocument().AssertionsWithPredicate("zip32_account_id"))
	a.SetZIP32AccountID(0)
	decodedAccount := checkRoundTrip(t, a, AccountFromDocument)
	require.NotNil(t, decodedAccount.ZIP32AccountID())
	assert.Equal(t, uint32(0), *decodedAccount.ZIP32AccountID())
}

func TestDecodeBreadcrumbs(t *testing.T) {
	address := document.New(0).
		AddType(TagAddress).
		AddAssertion("address", NewTransparentAddress(mainnetP2PKH))
	account := document.New(0).
		AddType(TagAccount).
		AddAssertion("name", "broken").
		AddAssertion("address", address)
	wallet := document.New(0).
		AddType(TagZewifWallet).
		AddAssertion("network", NetworkMain).
		AddAssertion("account", account)
	d := document.New(blob.NewARID()).
		AddType(TagZewif).
		AddAssertion("wallet", wallet).
		AddAssertion("export_height", BlockHeight(1))

	_, err := ZewifFromDocument(d)
	require.ErrorIs(t, err, document.ErrMissingAssertion)
	assert.Contains(t, err.Error(), `wallet: account: address: missing assertion "name"`)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := AccountFromDocument(NewZewifWallet(NetworkMain).ToDocument())
	require.ErrorIs(t, err, document.ErrTypeMismatch)

	_, err = AddressFromDocument(document.New(0).AddAssertion("name", "untyped"))
	require.ErrorIs(t, err, document.ErrTypeMismatch)

	_, err = AccountFromDocument(document.New("zero").AddType(TagAccount).AddAssertion("name", ""))
	require.ErrorIs(t, err, document.ErrSubjectCoercion)
}

func TestDuplicateTransactionRejected(t *testing.T) {
	tx := NewTransaction(blob.TxID{7})
	d := NewZewif(1).ToDocument().
		AddAssertion("transaction", tx).
		AddAssertion("transaction", tx)

	_, err := ZewifFromDocument(d)
	require.ErrorIs(t, err, ErrDuplicateTransaction)
}

func TestZewifTransactions(t *testing.T) {
	z := NewZewif(10)
	a := NewTransaction(blob.TxID{2})
	b := NewTransaction(blob.TxID{1})
	z.AddTransaction(a)
	z.AddTransaction(b)

	assert.Same(t, a, z.Transaction(blob.TxID{2}))
	assert.Nil(t, z.Transaction(blob.TxID{3}))
	assert.Equal(t, []*Transaction{b, a}, z.Transactions())

	z.SetTransactions([]*Transaction{a})
	assert.Equal(t, []*Transaction{a}, z.Transactions())
}

func TestRegistry(t *testing.T) {
	assert.Len(t, Registry.Tags(), 16)

	v, err := Decode(NewAccount().ToDocument())
	require.NoError(t, err)
	assert.IsType(t, &Account{}, v)

	r := rand.New(rand.NewPCG(5, 6))
	w := witnessAt(t, r, ProtocolSprout, 2, 3)
	v, err = Decode(w.ToDocument())
	require.NoError(t, err)
	require.IsType(t, &Witness{}, v)
	assert.Equal(t, ProtocolSprout, v.(*Witness).Protocol())

	v, err = Decode(TreeDocument(w.Merkle().Tree()))
	require.NoError(t, err)
	assert.True(t, w.Merkle().Tree().Equal(v.(*merkle.Tree)))

	_, err = Decode(document.New(1).AddType("Bogus"))
	require.ErrorIs(t, err, document.ErrUnknownTag)

	_, err = Decode(document.New(99).AddType(TagIncrementalMerkleTree).AddAssertion("parents", []*blob.U256{}))
	require.ErrorIs(t, err, document.ErrMalformedDocument)
}

func TestProtocolAddressDispatch(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 20 {
		a := randProtocolAddress(r)
		decoded, err := ProtocolAddressFromDocument(a.ToDocument())
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	}

	_, err := ProtocolAddressFromDocument(NewAccount().ToDocument())
	require.ErrorIs(t, err, document.ErrUnknownTag)
}

func TestUnifiedAddressReceiverTypes(t *testing.T) {
	a := NewUnifiedAddress("u1test")
	a.AddReceiverType(ReceiverOrchard)
	a.AddReceiverType(ReceiverP2PKH)
	a.AddReceiverType(ReceiverOrchard)
	a.AddReceiverType(ReceiverSapling)

	assert.Equal(t, []ReceiverType{ReceiverP2PKH, ReceiverSapling, ReceiverOrchard}, a.ReceiverTypes())
	assert.True(t, a.HasReceiverType(ReceiverSapling))
	assert.False(t, a.HasReceiverType(ReceiverP2SH))

	decoded := checkRoundTrip(t, a, UnifiedAddressFromDocument)
	assert.Equal(t, a, decoded)
}

func TestTransparentAddress(t *testing.T) {
	p2pkh := NewTransparentAddress(mainnetP2PKH)
	kind, err := p2pkh.ReceiverType()
	require.NoError(t, err)
	assert.Equal(t, ReceiverP2PKH, kind)
	require.NoError(t, p2pkh.Validate(NetworkMain))
	require.ErrorIs(t, p2pkh.Validate(NetworkTest), crypto.ErrInvalidAddress)

	kind, err = NewTransparentAddress(mainnetP2SH).ReceiverType()
	require.NoError(t, err)
	assert.Equal(t, ReceiverP2SH, kind)

	require.NoError(t, NewTransparentAddress(testnetP2PKH).Validate(NetworkRegtest))
	require.ErrorIs(t, NewTransparentAddress("t1notbase58check").Validate(NetworkMain), crypto.ErrInvalidAddress)

	pub, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)
	derived, err := TransparentAddressFromPubKey(pub, NetworkMain)
	require.NoError(t, err)
	assert.Equal(t, mainnetP2PKH, derived.String())
	derived, err = TransparentAddressFromPubKey(pub, NetworkTest)
	require.NoError(t, err)
	assert.Equal(t, testnetP2PKH, derived.String())

	_, err = TransparentAddressFromPubKey([]byte{0x02, 0x01}, NetworkMain)
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestWitnessRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))

	for _, protocol := range []Protocol{ProtocolSprout, ProtocolSapling, ProtocolOrchard} {
		for _, extra := range []int{0, 1, 2, 5} {
			w := witnessAt(t, r, protocol, 0, extra)
			decoded := checkRoundTrip(t, w, WitnessDecoder(protocol))

			assert.Equal(t, protocol, decoded.Protocol())
			assert.Equal(t, w.Position(), decoded.Position())
			assert.True(t, w.Merkle().Equal(decoded.Merkle()))
		}
	}
}

func TestSproutWitnessRoot(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	w := witnessAt(t, r, ProtocolSprout, 3, 6)
	decoded := checkRoundTrip(t, w, WitnessDecoder(ProtocolSprout))

	h, ok := ProtocolSprout.Hasher()
	require.True(t, ok)
	path, err := decoded.Merkle().Path(h)
	require.NoError(t, err)
	assert.Len(t, path.AuthPath, merkle.SproutDepth)
	assert.Equal(t, w.Merkle().Root(h), path.Root(h, decoded.Merkle().Element()))
}

func TestWitnessProtocolChecks(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	sprout := witnessAt(t, r, ProtocolSprout, 0, 1)
	sapling := witnessAt(t, r, ProtocolSapling, 0, 1)

	_, err := NewWitness(ProtocolSapling, sprout.Merkle())
	require.ErrorIs(t, err, ErrProtocolMismatch)

	require.ErrorIs(t, NewSaplingOutputDescription(blob.U256{}).SetWitness(sprout), ErrProtocolMismatch)
	require.ErrorIs(t, NewOrchardActionDescription(blob.U256{}).SetWitness(sapling), ErrProtocolMismatch)
	require.ErrorIs(t, NewJoinSplitDescription(blob.U256{}, nil, nil).SetWitness(sapling), ErrProtocolMismatch)

	_, err = WitnessDecoder(ProtocolSapling)(sprout.ToDocument())
	require.ErrorIs(t, err, document.ErrTypeMismatch)

	// An orchard-tagged document holding a depth 29 tree.
	mislabeled := document.New(TreeDocument(sprout.Merkle().Tree())).
		AddType(TagOrchardWitness).
		AddAssertion("filled", []blob.U256{})
	_, err = WitnessDecoder(ProtocolOrchard)(mislabeled)
	require.ErrorIs(t, err, ErrProtocolMismatch)
}

func TestTreeDocumentRejectsMalformedFrontier(t *testing.T) {
	right := blob.U256{1}
	d := document.New(merkle.SaplingDepth).
		AddType(TagIncrementalMerkleTree).
		AddAssertion("right", right).
		AddAssertion("parents", []*blob.U256{})

	_, err := TreeFromDocument(d, merkle.SaplingDepth)
	require.ErrorIs(t, err, merkle.ErrStructuralInvariant)
}

func TestAmount(t *testing.T) {
	_, err := NewAmount(MaxMoney + 1)
	require.ErrorIs(t, err, ErrAmountOutOfRange)
	_, err = NewAmount(-MaxMoney - 1)
	require.ErrorIs(t, err, ErrAmountOutOfRange)

	assert.Equal(t, "1.50000000 ZEC", MustAmount(150_000_000).String())
	assert.Equal(t, "-0.00000001 ZEC", MustAmount(-1).String())

	d := document.New(0).
		AddType(TagSaplingSentOutput).
		AddAssertion("diversifier", blob.Blob11{}).
		AddAssertion(predicateRecipientPublicKey, blob.U256{}).
		AddAssertion("value", int64(MaxMoney+1)).
		AddAssertion("rcm", blob.U256{})
	_, err = SaplingSentOutputFromDocument(d)
	require.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.Contains(t, err.Error(), "value")
}

func TestNetwork(t *testing.T) {
	for _, n := range []Network{NetworkMain, NetworkTest, NetworkRegtest} {
		parsed, err := ParseNetwork(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
	assert.False(t, NetworkMain.Testnet())
	assert.True(t, NetworkRegtest.Testnet())

	_, err := ParseNetwork("mainnet")
	require.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestReceiverTypeBinary(t *testing.T) {
	var rt ReceiverType
	p := parser.New([]byte{0x02, 0x04})
	require.NoError(t, rt.ParseFrom(p))
	assert.Equal(t, ReceiverSapling, rt)

	require.ErrorIs(t, rt.ParseFrom(p), parser.ErrInvalidDiscriminant)
	assert.Equal(t, 1, p.Offset())

	w := parser.NewWriter()
	ReceiverOrchard.Write(w)
	assert.Equal(t, []byte{0x03}, w.Bytes())

	_, err := ParseReceiverType("sapling")
	require.ErrorIs(t, err, ErrInvalidReceiverType)
}

func TestPosition(t *testing.T) {
	p, err := PositionFrom(42)
	require.NoError(t, err)
	assert.Equal(t, "Position(42)", p.String())

	_, err = PositionFrom(1 << 32)
	require.ErrorIs(t, err, parser.ErrNumericOverflow)
}
