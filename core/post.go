// File: post.go
// Role: Post accessors and operations (likes, reply policy, thread
// accounting, deep copy, debug invariant check).
//
// Accessors that expose collections return fresh copies; Likes() is
// sorted for deterministic output, replies stay in creation order.

package core

import (
	"sort"
	"strings"
	"time"

	"github.com/neysofu/uni-microblog/username"
)

// ID returns the post's unique identifier.
func (p *Post) ID() string { return p.id }

// Author returns the post author's username.
func (p *Post) Author() string { return p.author }

// Text returns the post body.
func (p *Post) Text() string { return p.text }

// Timestamp returns the post's creation time.
func (p *Post) Timestamp() time.Time { return p.stamp }

// Restriction returns the post's reply restriction.
func (p *Post) Restriction() ReplyRestriction { return p.restriction }

// ParentID returns the id of the post this one replies to, or the
// empty string for root posts.
func (p *Post) ParentID() string { return p.parentID }

// Likes returns the usernames that currently like the post, sorted.
// Complexity: O(L log L)
func (p *Post) Likes() []string {
	likes := make([]string, 0, len(p.likes))
	for user := range p.likes {
		likes = append(likes, user)
	}
	sort.Strings(likes)

	return likes
}

// LikeCount returns the number of likes on the post.
func (p *Post) LikeCount() int { return len(p.likes) }

// Replies returns independent copies of the post's direct replies, in
// creation order.
func (p *Post) Replies() []*Post {
	replies := make([]*Post, len(p.replies))
	for i, reply := range p.replies {
		replies[i] = reply.Clone()
	}

	return replies
}

// Hashtags returns the hashtags parsed from the body, in order of
// appearance, markers stripped.
func (p *Post) Hashtags() []string {
	return append([]string(nil), p.hashtags...)
}

// TaggedUsers returns the usernames tagged in the body, in order of
// appearance, markers stripped.
func (p *Post) TaggedUsers() []string {
	return append([]string(nil), p.taggedUsers...)
}

// UserCanReply reports whether user is admitted by the post's reply
// restriction: Everyone admits anyone, OnlyAuthor admits the author,
// OnlyAuthorOrTagged admits the author and any tagged user.
func (p *Post) UserCanReply(user string) bool {
	switch p.restriction {
	case Everyone:
		return true
	case OnlyAuthor:
		return user == p.author
	case OnlyAuthorOrTagged:
		if user == p.author {
			return true
		}
		for _, tagged := range p.taggedUsers {
			if tagged == user {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IsLikedBy reports whether user currently likes the post.
func (p *Post) IsLikedBy(user string) bool {
	_, ok := p.likes[user]
	return ok
}

// ToggleLike flips user's membership in the like set and returns the
// new state (true = now liked). It is an involution per user: two
// successive calls restore the original state. Returns
// ErrEmptyUsername for an empty user and ErrSelfLike when user is the
// post's author. This is the only entry point through which the like
// set ever changes.
func (p *Post) ToggleLike(user string) (bool, error) {
	if user == "" {
		return false, ErrEmptyUsername
	}
	if user == p.author {
		return false, ErrSelfLike
	}
	if _, ok := p.likes[user]; ok {
		delete(p.likes, user)
		return false, nil
	}
	p.likes[user] = struct{}{}

	return true, nil
}

// TotalReplies counts all descendants of the post (replies, replies
// of replies, and so on), excluding the post itself. The count is
// computed over the live subtree with an explicit worklist, never
// cached, since replies can be attached after construction.
// Complexity: O(size of subtree)
func (p *Post) TotalReplies() int {
	total := 0
	queue := []*Post{p}
	for len(queue) > 0 {
		top := queue[0]
		queue = queue[1:]
		total += len(top.replies)
		queue = append(queue, top.replies...)
	}

	return total
}

// IsControversial reports whether the post has strictly more total
// replies than likes.
func (p *Post) IsControversial() bool {
	return p.TotalReplies() > len(p.likes)
}

// Clone returns a full, independent deep copy of the post and its
// reply subtree: id, author, text, timestamp, restriction, likes, and
// every reply are copied recursively. Mutating the copy never affects
// the original.
// Complexity: O(size of subtree)
func (p *Post) Clone() *Post {
	clone := &Post{
		id:          p.id,
		author:      p.author,
		text:        p.text,
		stamp:       p.stamp,
		restriction: p.restriction,
		likes:       make(map[string]struct{}, len(p.likes)),
		parentID:    p.parentID,
		hashtags:    append([]string(nil), p.hashtags...),
		taggedUsers: append([]string(nil), p.taggedUsers...),
	}
	for user := range p.likes {
		clone.likes[user] = struct{}{}
	}
	if len(p.replies) > 0 {
		clone.replies = make([]*Post, len(p.replies))
		for i, reply := range p.replies {
			clone.replies[i] = reply.Clone()
		}
	}

	return clone
}

// CheckRep restates the representation invariant of Post, recursively
// over the reply subtree:
//
//  1. the author passes the standard username rules and the body fits
//     MaxPostLength;
//  2. the author never appears in the like set and every liker passes
//     the username rules;
//  3. every reply points back to this post, is strictly later, and
//     satisfies the invariant itself;
//  4. OnlyAuthor admits only replies by the author;
//  5. OnlyAuthorOrTagged admits only the author and tagged users;
//  6. every hashtag/mention token appears in the body with its marker.
//
// Debug-only: intended for test suites, never called from production
// code paths.
func (p *Post) CheckRep() bool {
	stack := []*Post{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !cur.checkRepLocal() {
			return false
		}
		stack = append(stack, cur.replies...)
	}

	return true
}

// checkRepLocal checks the non-recursive clauses for a single node.
func (p *Post) checkRepLocal() bool {
	if !username.IsValid(p.author) || len([]rune(p.text)) > MaxPostLength {
		return false
	}
	if _, ok := p.likes[p.author]; ok {
		return false
	}
	for liker := range p.likes {
		if !username.IsValid(liker) {
			return false
		}
	}
	for _, reply := range p.replies {
		if reply.parentID != p.id || !reply.stamp.After(p.stamp) {
			return false
		}
		switch p.restriction {
		case OnlyAuthor:
			if reply.author != p.author {
				return false
			}
		case OnlyAuthorOrTagged:
			if !p.UserCanReply(reply.author) {
				return false
			}
		}
	}
	for _, tag := range p.hashtags {
		if !strings.Contains(p.text, "#"+tag) {
			return false
		}
	}
	for _, tagged := range p.taggedUsers {
		if !strings.Contains(p.text, "@"+tagged) {
			return false
		}
	}

	return true
}
