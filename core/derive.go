// File: derive.go
// Role: pure re-derivation helpers over post lists and follow maps.
//
// These functions hold no state and touch no Network: they reconstruct
// the follow relation from like sets alone, which makes them the
// black-box cross-check for the incrementally maintained structure:
// GuessFollowers over a network's posts must agree with the network's
// own Followers for every author who has one.

package core

import "sort"

// GuessFollowers reconstructs a follower map purely from the posts'
// like sets: for each author, only the likes on that author's first
// post in the list are taken, since the first occurrence of an author
// is their presentation post. Returns ErrNilPost if the list contains
// a nil entry.
// Complexity: O(P + likes)
func GuessFollowers(posts []*Post) (map[string][]string, error) {
	followers := make(map[string][]string)
	for _, post := range posts {
		if post == nil {
			return nil, ErrNilPost
		}
		if _, seen := followers[post.author]; seen {
			continue
		}
		followers[post.author] = post.Likes()
	}

	return followers, nil
}

// ReverseFollowRelation inverts a follow map: if m associates each
// user with the users who follow them, the result associates each user
// with the users they follow (and vice versa). Every username
// appearing in m (as a key or as a member) is a key of the result.
// Values are sorted.
// Complexity: O(users + edges)
func ReverseFollowRelation(m map[string][]string) map[string][]string {
	inverted := make(map[string]map[string]struct{}, len(m))
	for user, members := range m {
		if _, ok := inverted[user]; !ok {
			inverted[user] = make(map[string]struct{})
		}
		for _, member := range members {
			if _, ok := inverted[member]; !ok {
				inverted[member] = make(map[string]struct{})
			}
			inverted[member][user] = struct{}{}
		}
	}

	return copyRelation(inverted)
}

// Influencers returns the usernames whose follower count strictly
// exceeds their followee count, computed by inverting the given
// follower map. The result is sorted.
func Influencers(followers map[string][]string) []string {
	followees := ReverseFollowRelation(followers)
	var influencers []string
	for user, fans := range followers {
		if len(fans) > len(followees[user]) {
			influencers = append(influencers, user)
		}
	}
	sort.Strings(influencers)

	return influencers
}

// AuthorsOf returns the sorted set of users who authored at least one
// post in the list. Returns ErrNilPost if the list contains a nil
// entry.
func AuthorsOf(posts []*Post) ([]string, error) {
	seen := make(map[string]struct{})
	for _, post := range posts {
		if post == nil {
			return nil, ErrNilPost
		}
		seen[post.author] = struct{}{}
	}
	authors := make([]string, 0, len(seen))
	for author := range seen {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	return authors, nil
}
