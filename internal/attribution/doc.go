// Package attribution assigns speaker roles to timed captions whose origin
// does not reliably carry them.
//
// The resolver aligns each caption against per-speaker text buffers built
// from a trusted transcript, consuming matched text so later captions anchor
// to unconsumed content. The pass is greedy and strictly left-to-right:
// caption arrival order is a correctness invariant.
package attribution
