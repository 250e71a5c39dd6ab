// File: network.go
// Role: Network mutations (register, publish, like/dislike) and
// queries (by author, by id, containment, follow relations).
//
// Every failed operation leaves the network untouched; every query
// returns independent copies of internal posts. Like/Dislike resolve
// the caller's post (possibly a copy) to the authoritative instance
// by id before touching anything.

package core

import (
	"sort"
	"strings"
	"time"
)

// Register creates the user named name with empty post and followee
// entries. Returns ErrEmptyUsername for an empty name,
// ErrInvalidUsername when the validator rejects it, and
// ErrDuplicateUser when the name is already taken; registering twice
// never silently succeeds.
func (n *Network) Register(name string) error {
	if name == "" {
		return ErrEmptyUsername
	}
	if !n.validator.IsValid(name) {
		return ErrInvalidUsername
	}
	if n.HasUser(name) {
		return ErrDuplicateUser
	}
	n.followees[name] = make(map[string]struct{})
	n.postsByUser[name] = nil

	return nil
}

// HasUser reports whether name is a registered user.
func (n *Network) HasUser(name string) bool {
	_, ok := n.followees[name]
	return ok
}

// Users returns the registered usernames, sorted.
func (n *Network) Users() []string {
	users := make([]string, 0, len(n.followees))
	for user := range n.followees {
		users = append(users, user)
	}
	sort.Strings(users)

	return users
}

// UserCount returns the number of registered users.
func (n *Network) UserCount() int { return len(n.followees) }

// WritePost builds the staged post and publishes it: the post is
// appended to its author's publication list and indexed by id. The
// author must be registered (ErrUnknownUser) and a staged parent must
// resolve by id to a post the network already owns (ErrUnknownParent);
// the reply is linked to the authoritative parent instance, not the
// caller's copy. Returns an independent copy of the created post.
func (n *Network) WritePost(b *Builder) (*Post, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.err != nil {
		return nil, b.err
	}
	if !n.HasUser(b.author) {
		return nil, ErrUnknownUser
	}
	staged := *b
	if b.parent != nil {
		parent, ok := n.postsByID[b.parent.id]
		if !ok {
			return nil, ErrUnknownParent
		}
		staged.parent = parent
	}

	post, err := staged.build(n.validator, n.idFn(n.nextSeq()), n.now())
	if err != nil {
		return nil, err
	}
	n.lastStamp = post.stamp
	n.postsByUser[post.author] = append(n.postsByUser[post.author], post)
	n.postsByID[post.id] = post

	return post.Clone(), nil
}

// Like records user's like on post, resolving post to the network's
// authoritative instance by id. A like that is already present is a
// no-op. If, and only if, the target is its author's presentation
// post, user becomes a follower of the author.
func (n *Network) Like(post *Post, user string) error {
	internal, err := n.resolve(post, user)
	if err != nil {
		return err
	}
	if internal.IsLikedBy(user) {
		return nil
	}
	if _, err = internal.ToggleLike(user); err != nil {
		return err
	}
	if n.isPresentation(internal) {
		n.followees[user][internal.author] = struct{}{}
	}

	return nil
}

// Dislike removes user's like from post, resolving post to the
// network's authoritative instance by id. A like that is already
// absent is a no-op. Disliking a presentation post removes user from
// the author's followers.
func (n *Network) Dislike(post *Post, user string) error {
	internal, err := n.resolve(post, user)
	if err != nil {
		return err
	}
	if internal.IsLikedBy(user) {
		if _, err = internal.ToggleLike(user); err != nil {
			return err
		}
	}
	if n.isPresentation(internal) {
		delete(n.followees[user], internal.author)
	}

	return nil
}

// Posts returns independent copies of every post ever published, root
// or reply. Authors are visited in sorted order and each author's
// posts in publication order, so the first occurrence of an author in
// the result is always their presentation post.
func (n *Network) Posts() []*Post {
	posts := make([]*Post, 0, len(n.postsByID))
	for _, user := range n.Users() {
		for _, post := range n.postsByUser[user] {
			posts = append(posts, post.Clone())
		}
	}

	return posts
}

// PostByID returns an independent copy of the post with the given id,
// or ErrUnknownPost.
func (n *Network) PostByID(id string) (*Post, error) {
	post, ok := n.postsByID[id]
	if !ok {
		return nil, ErrUnknownPost
	}

	return post.Clone(), nil
}

// WrittenBy returns independent copies of all posts authored by user,
// in publication order. Unregistered or never-posted users yield an
// empty result, not an error.
func (n *Network) WrittenBy(user string) []*Post {
	posts := make([]*Post, 0, len(n.postsByUser[user]))
	for _, post := range n.postsByUser[user] {
		posts = append(posts, post.Clone())
	}

	return posts
}

// Containing returns independent copies of every post whose body
// contains at least one of words as a substring. No words, no results.
func (n *Network) Containing(words []string) []*Post {
	var results []*Post
	for _, user := range n.Users() {
		for _, post := range n.postsByUser[user] {
			for _, word := range words {
				if strings.Contains(post.text, word) {
					results = append(results, post.Clone())
					break
				}
			}
		}
	}

	return results
}

// PresentationPost returns an independent copy of user's presentation
// post, the first post they ever published. Returns ErrUnknownUser
// for unregistered users and ErrNoPosts for users who have not posted.
func (n *Network) PresentationPost(user string) (*Post, error) {
	if !n.HasUser(user) {
		return nil, ErrUnknownUser
	}
	posts := n.postsByUser[user]
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}

	return posts[0].Clone(), nil
}

// Followees returns, for every registered user, the sorted set of
// users they follow: v appears under u iff u has liked v's
// presentation post. The result is a copy.
func (n *Network) Followees() map[string][]string {
	return copyRelation(n.followees)
}

// Followers returns the inverse of Followees: for every registered
// user, the sorted set of users who follow them. Followers and
// Followees are mutually consistent at all times.
func (n *Network) Followers() map[string][]string {
	return ReverseFollowRelation(copyRelation(n.followees))
}

// Authors returns the sorted set of users who have published at least
// one post.
func (n *Network) Authors() []string {
	var authors []string
	for _, user := range n.Users() {
		if len(n.postsByUser[user]) > 0 {
			authors = append(authors, user)
		}
	}

	return authors
}

// CheckRep verifies the representation invariant of every post owned
// by the network. Debug-only, for test suites.
func (n *Network) CheckRep() bool {
	for _, posts := range n.postsByUser {
		for _, post := range posts {
			if !post.CheckRep() {
				return false
			}
		}
	}

	return true
}

// resolve validates a (post, user) mutation pair and returns the
// network's authoritative instance for the post's id.
func (n *Network) resolve(post *Post, user string) (*Post, error) {
	if post == nil {
		return nil, ErrNilPost
	}
	if user == "" {
		return nil, ErrEmptyUsername
	}
	if !n.HasUser(user) {
		return nil, ErrUnknownUser
	}
	internal, ok := n.postsByID[post.id]
	if !ok {
		return nil, ErrUnknownPost
	}

	return internal, nil
}

// isPresentation reports whether post is the first post its author
// ever published. Only presentation posts drive the follow relation.
func (n *Network) isPresentation(post *Post) bool {
	posts := n.postsByUser[post.author]
	return len(posts) > 0 && posts[0].id == post.id
}

// nextSeq advances the per-network id sequence.
func (n *Network) nextSeq() uint64 {
	n.nextID++
	return n.nextID
}

// now reads the clock, clamped so that successive constructions are
// never earlier than an already-published post.
func (n *Network) now() time.Time {
	stamp := n.clock()
	if stamp.Before(n.lastStamp) {
		stamp = n.lastStamp
	}

	return stamp
}

// copyRelation deep-copies a set-valued relation into sorted slices.
func copyRelation(rel map[string]map[string]struct{}) map[string][]string {
	out := make(map[string][]string, len(rel))
	for user, set := range rel {
		members := make([]string, 0, len(set))
		for member := range set {
			members = append(members, member)
		}
		sort.Strings(members)
		out[user] = members
	}

	return out
}
