// Package moderation adds crowd-moderation on top of a core.Network:
// per-post report tallies and a deterministic blacklist threshold.
//
// A moderation.Network owns its base network through composition and
// re-exposes its full operation set by embedding; WritePost is
// intercepted so that every published post opens an empty report
// tally. A post is blacklisted once its report count exceeds the
// square root of the registered user count.
package moderation

import (
	"errors"
	"math"
	"sort"

	"github.com/neysofu/uni-microblog/core"
)

// Sentinel errors for moderation operations.
var (
	// ErrUnknownPost indicates a report or lookup against a post the
	// moderated network does not track.
	ErrUnknownPost = errors.New("moderation: post not tracked")

	// ErrUnknownReporter indicates a report by an unregistered user.
	ErrUnknownReporter = errors.New("moderation: reporter not registered")

	// ErrSelfReport indicates an author trying to report their own post.
	ErrSelfReport = errors.New("moderation: authors cannot report their own posts")
)

// Network is a moderated social network: a core.Network plus a report
// tally per published post. All core operations remain available.
type Network struct {
	*core.Network

	// reports maps post id → set of reporter usernames. One entry is
	// opened per published post and never contains the post's author.
	reports map[string]map[string]struct{}
}

// New creates an empty moderated network. The options configure the
// underlying core.Network.
func New(opts ...core.Option) *Network {
	return &Network{
		Network: core.NewNetwork(opts...),
		reports: make(map[string]map[string]struct{}),
	}
}

// WritePost publishes the staged post through the base network and, on
// success, opens an empty report tally for it.
func (n *Network) WritePost(b *core.Builder) (*core.Post, error) {
	post, err := n.Network.WritePost(b)
	if err != nil {
		return nil, err
	}
	n.reports[post.ID()] = make(map[string]struct{})

	return post, nil
}

// Report records user's report against post. The reporter must be a
// registered user (ErrUnknownReporter) other than the post's author
// (ErrSelfReport), and the post must be tracked (ErrUnknownPost).
// Re-reporting by the same user is a no-op, never an accumulation.
func (n *Network) Report(post *core.Post, user string) error {
	internal, tally, err := n.resolve(post)
	if err != nil {
		return err
	}
	if user == "" {
		return core.ErrEmptyUsername
	}
	if !n.HasUser(user) {
		return ErrUnknownReporter
	}
	if user == internal.Author() {
		return ErrSelfReport
	}
	tally[user] = struct{}{}

	return nil
}

// Reporters returns the sorted usernames that have reported post, or
// ErrUnknownPost.
func (n *Network) Reporters(post *core.Post) ([]string, error) {
	_, tally, err := n.resolve(post)
	if err != nil {
		return nil, err
	}
	reporters := make([]string, 0, len(tally))
	for user := range tally {
		reporters = append(reporters, user)
	}
	sort.Strings(reporters)

	return reporters, nil
}

// PostIsBlacklisted reports whether post's report count exceeds the
// blacklist threshold: the square root of the registered user count.
// Returns ErrUnknownPost for untracked posts.
func (n *Network) PostIsBlacklisted(post *core.Post) (bool, error) {
	_, tally, err := n.resolve(post)
	if err != nil {
		return false, err
	}

	return float64(len(tally)) > math.Sqrt(float64(n.UserCount())), nil
}

// Blacklist returns independent copies of every currently blacklisted
// post. For every tracked post p, Blacklist contains p iff
// PostIsBlacklisted(p) is true.
func (n *Network) Blacklist() []*core.Post {
	var blacklisted []*core.Post
	for _, post := range n.Posts() {
		if banned, err := n.PostIsBlacklisted(post); err == nil && banned {
			blacklisted = append(blacklisted, post)
		}
	}

	return blacklisted
}

// resolve maps post to its tracked tally and authoritative copy.
func (n *Network) resolve(post *core.Post) (*core.Post, map[string]struct{}, error) {
	if post == nil {
		return nil, nil, core.ErrNilPost
	}
	tally, ok := n.reports[post.ID()]
	if !ok {
		return nil, nil, ErrUnknownPost
	}
	internal, err := n.PostByID(post.ID())
	if err != nil {
		return nil, nil, ErrUnknownPost
	}

	return internal, tally, nil
}
