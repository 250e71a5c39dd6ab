// Package microblog is an in-memory social content graph: short text
// posts, threaded replies, likes, derived follower relationships, and
// crowd-moderation via reports.
//
// What you get:
//
//   - Posts & threads: 140-character posts with per-post reply
//     restrictions, hashtag/mention extraction, and worklist-based
//     thread accounting
//   - A social network registry: register users, publish posts, toggle
//     likes, and query by author, id, or full-text containment
//   - Derived follows: liking an author's presentation post (their very
//     first post) is what makes you a follower; the relation is
//     maintained incrementally and always agrees with a from-scratch
//     re-derivation over the like sets
//   - Moderation: per-post report tallies with a deterministic
//     square-root blacklist threshold
//
// Design stance:
//
//   - Pure, synchronous, in-process data structure with a well-defined
//     contract; persistence, transport and locking belong to the caller
//   - Invariant-guarded state: mutation goes through validating
//     builders and toggles; reads hand out independent deep copies, so
//     callers can never corrupt internal state through a returned post
//   - Sentinel errors per package, branchable with errors.Is
//   - Deterministic by injection: clocks and id schemes are pluggable,
//     so tests control time and identity
//
// The module is organized in three subpackages:
//
//	username/   — username validation rules (length bounds, character set)
//	core/       — Post, Builder, Network and the pure derivation helpers
//	moderation/ — report tallies and blacklisting over a core.Network
//
// Quick example:
//
//	net := core.NewNetwork()
//	_ = net.Register("alice")
//	_ = net.Register("super_bob99")
//	post, _ := net.WritePost(core.NewBuilder("alice", "Hello #test"))
//	_ = net.Like(post, "super_bob99")
//	// "super_bob99" now follows "alice".
package microblog
