// Package pure provides the memoization leaf the stream package is built on.
//
// The centerpiece is Thunk, a deferred computation that runs its producer at
// most once and answers from its cache forever after. Thunk assumes the
// producer is pure in the referential-transparency sense: same result every
// time it could have run, no side effects the caller depends on happening
// twice. Under that assumption, deferring the call and caching the answer is
// indistinguishable from having computed it eagerly, which is exactly what
// lazy data structures rely on.
//
// WARNING: do not wrap impure producers (time, I/O, randomness) unless the
// single cached sample is genuinely what you want.
package pure
