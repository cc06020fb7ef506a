// Package zewif defines the entities of the Zcash wallet interchange
// format and their document encodings.
//
// Every entity converts to a document with ToDocument and back with its
// FromDocument function. Decoding checks the type tag first, then reads
// each field by predicate; failures name the predicate path that led to
// them. Child collections that must keep their order carry an index,
// assigned by the owning container when the child is added.
package zewif

// Type tags. They are case-sensitive and part of the wire format.
const (
	TagZewif                    = "Zewif"
	TagZewifWallet              = "ZewifWallet"
	TagAccount                  = "Account"
	TagAddress                  = "Address"
	TagTransparentAddress       = "TransparentAddress"
	TagShieldedAddress          = "ShieldedAddress"
	TagUnifiedAddress           = "UnifiedAddress"
	TagTransaction              = "Transaction"
	TagSaplingOutputDescription = "SaplingOutputDescription"
	TagOrchardActionDescription = "OrchardActionDescription"
	TagJoinSplitDescription     = "JoinSplitDescription"
	TagSaplingSentOutput        = "SaplingSentOutput"
	TagIncrementalMerkleTree    = "IncrementalMerkleTree"
	TagSproutWitness            = "SproutWitness"
	TagSaplingWitness           = "SaplingWitness"
	TagOrchardWitness           = "OrchardWitness"
)
