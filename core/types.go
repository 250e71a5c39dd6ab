// Package core defines the central Post, Builder, and Network types of
// the microblog content graph, and provides invariant-preserving
// primitives for publishing, liking, and querying posts.
//
// Posts form threads: every post may carry an ordered list of replies,
// and every reply records its parent's id (children-only links, no
// back-pointers, so the structure is an acyclic tree). A Network owns
// the posts it has accepted and derives the follow relation from likes
// on presentation posts. Reads hand out independent deep copies; the
// internal representation is never reachable from outside.
//
// All operations are synchronous and single-writer by contract: the
// package performs no internal locking, and callers adapting it to a
// concurrent context must provide external mutual exclusion.
//
// This file declares Post, ReplyRestriction, Network, the Option and
// IDFn configuration types, and the NewNetwork constructor.
package core

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/neysofu/uni-microblog/username"
)

// MaxPostLength is the maximum rune count of a post body.
const MaxPostLength = 140

// ReplyRestriction governs who may attach a reply to a post.
type ReplyRestriction int

const (
	// Everyone lets any user reply. This is the default.
	Everyone ReplyRestriction = iota

	// OnlyAuthor restricts replies to the post's own author.
	OnlyAuthor

	// OnlyAuthorOrTagged restricts replies to the author and the users
	// tagged in the post body.
	OnlyAuthorOrTagged
)

// Valid reports whether r is one of the declared restriction values.
func (r ReplyRestriction) Valid() bool {
	return r >= Everyone && r <= OnlyAuthorOrTagged
}

// String returns a stable textual name for the restriction.
func (r ReplyRestriction) String() string {
	switch r {
	case Everyone:
		return "everyone"
	case OnlyAuthor:
		return "only-author"
	case OnlyAuthorOrTagged:
		return "only-author-or-tagged"
	default:
		return "unknown(" + strconv.Itoa(int(r)) + ")"
	}
}

// Post is the content entity: an id, an author, a body of at most
// MaxPostLength runes, a creation timestamp, a like set, a reply
// restriction, derived hashtags and tagged users, and the ordered
// replies rooted at it.
//
// Posts are created through a Builder and mutated only through
// ToggleLike (or Like/Dislike on the owning Network). Instances
// returned by Network queries are independent deep copies.
type Post struct {
	id          string
	author      string
	text        string
	stamp       time.Time
	restriction ReplyRestriction

	likes map[string]struct{}

	// parentID is the id of the post this one replies to, empty for
	// roots. Links run parent→child only; the id is enough to walk up
	// through a Network index without cyclic references.
	parentID string
	replies  []*Post

	// Derived from text at construction, never independently mutated.
	hashtags    []string
	taggedUsers []string
}

// UsernameValidator decides membership in the valid-username set.
// username.Validator satisfies it; callers may plug their own rules.
type UsernameValidator interface {
	IsValid(candidate string) bool
}

// IDFn generates a post identifier from a per-network sequence number.
// Ids must be unique within a running Network; beyond that the scheme
// is free (sequential, random, content-addressed, ...).
type IDFn func(seq uint64) string

// DefaultIDFn returns "p" followed by the decimal sequence number,
// e.g. 1→"p1", 42→"p42".
func DefaultIDFn(seq uint64) string {
	return "p" + strconv.FormatUint(seq, 10)
}

// RandomIDFn ignores the sequence number and returns a random UUID,
// the 128-bit id scheme. Two independent networks can never collide.
func RandomIDFn(uint64) string {
	return uuid.NewString()
}

// Option configures a Network before creation.
type Option func(*Network)

// WithValidator replaces the username validator (default: the standard
// 3–12 rune rules from the username package). Nil is ignored.
func WithValidator(v UsernameValidator) Option {
	return func(n *Network) {
		if v != nil {
			n.validator = v
		}
	}
}

// WithClock replaces the time source (default: time.Now). The network
// still enforces monotonicity: successive posts never move backwards
// in time, and replies are strictly after their parents. Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(n *Network) {
		if clock != nil {
			n.clock = clock
		}
	}
}

// WithIDFn replaces the post id scheme (default: DefaultIDFn). The
// sequence counter is owned by the Network instance, so independent
// networks never share id sequences. Nil is ignored.
func WithIDFn(fn IDFn) Option {
	return func(n *Network) {
		if fn != nil {
			n.idFn = fn
		}
	}
}

// WithRandomIDs switches the network to the random 128-bit id scheme.
// Shorthand for WithIDFn(RandomIDFn).
func WithRandomIDs() Option {
	return WithIDFn(RandomIDFn)
}

// Network is the registry of users and posts.
//
// users are keyed by registered name through followees; postsByUser
// keeps each author's posts in publication order (the first entry is
// the presentation post); postsByID covers every post ever published,
// root or reply, for O(1) lookup. followees is the incrementally
// maintained follow relation: followees[u] contains v iff u has liked
// v's presentation post. It always agrees with a from-scratch
// re-derivation over the like sets (see GuessFollowers).
type Network struct {
	validator UsernameValidator
	clock     func() time.Time
	idFn      IDFn

	nextID    uint64
	lastStamp time.Time

	followees   map[string]map[string]struct{}
	postsByUser map[string][]*Post
	postsByID   map[string]*Post
}

// NewNetwork creates an empty Network with the given options.
// Complexity: O(len(opts))
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		validator:   username.New(),
		clock:       time.Now,
		idFn:        DefaultIDFn,
		followees:   make(map[string]map[string]struct{}),
		postsByUser: make(map[string][]*Post),
		postsByID:   make(map[string]*Post),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
