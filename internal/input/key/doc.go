// Package key defines the key vocabulary for the dispatch layer: HID usage
// codes, bit-packed key flags, physical switch addresses, and the key event
// type produced by the scan engine.
//
// A Key packs a flags byte and a usage-code byte into a uint16. For ordinary
// keys the flags byte holds held-modifier bits; for synthetic keys it holds
// the layer-operation kind and the code byte holds the target layer. Both
// encodings are explicit numeric contracts: the any-key macro and the layer
// predicates depend on the exact values.
package key
