package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neysofu/uni-microblog/core"
)

const (
	userAlice   = "Alice"
	userBob     = "super_bob99"
	userCharlie = "Charlie"
)

func TestBuilder_Build(t *testing.T) {
	post, err := core.NewBuilder(userAlice, "Hello #test @super_bob99").Build()
	require.NoError(t, err)
	require.True(t, post.CheckRep())

	require.NotEmpty(t, post.ID())
	require.Equal(t, userAlice, post.Author())
	require.Equal(t, "Hello #test @super_bob99", post.Text())
	require.False(t, post.Timestamp().IsZero())
	require.Equal(t, core.Everyone, post.Restriction())
	require.Empty(t, post.Likes())
	require.Empty(t, post.Replies())
	require.Empty(t, post.ParentID())
	require.Equal(t, []string{"test"}, post.Hashtags())
	require.Equal(t, []string{"super_bob99"}, post.TaggedUsers())
}

func TestBuilder_TextLengthBoundary(t *testing.T) {
	// Exactly 140 runes must succeed; 141 must fail.
	atLimit := strings.Repeat("a", core.MaxPostLength)
	post, err := core.NewBuilder(userAlice, atLimit).Build()
	require.NoError(t, err)
	require.True(t, post.CheckRep())

	_, err = core.NewBuilder(userAlice, atLimit+"a").Build()
	require.ErrorIs(t, err, core.ErrTextTooLong)
}

func TestBuilder_TextLengthCountsRunes(t *testing.T) {
	// 140 multi-byte runes are still within the limit.
	post, err := core.NewBuilder(userAlice, strings.Repeat("è", core.MaxPostLength)).Build()
	require.NoError(t, err)
	require.True(t, post.CheckRep())
}

func TestBuilder_MissingAndInvalidAuthor(t *testing.T) {
	_, err := core.NewBuilder("", "hello").Build()
	require.ErrorIs(t, err, core.ErrEmptyUsername)

	_, err = core.NewBuilder("no", "too short a name").Build()
	require.ErrorIs(t, err, core.ErrInvalidUsername)
}

func TestBuilder_RestrictReplies(t *testing.T) {
	post, err := core.NewBuilder(userAlice, "mine only").
		RestrictReplies(core.OnlyAuthor).
		Build()
	require.NoError(t, err)
	require.Equal(t, core.OnlyAuthor, post.Restriction())

	_, err = core.NewBuilder(userAlice, "bad").
		RestrictReplies(core.ReplyRestriction(42)).
		Build()
	require.ErrorIs(t, err, core.ErrBadRestriction)
}

func TestBuilder_InResponseTo(t *testing.T) {
	root, err := core.NewBuilder(userAlice, "root post").Build()
	require.NoError(t, err)

	reply, err := core.NewBuilder(userBob, "a reply").InResponseTo(root).Build()
	require.NoError(t, err)
	require.Equal(t, root.ID(), reply.ParentID())
	require.True(t, reply.Timestamp().After(root.Timestamp()),
		"reply timestamp must be strictly after the parent's")

	replies := root.Replies()
	require.Len(t, replies, 1)
	require.Equal(t, reply.ID(), replies[0].ID())
	require.True(t, root.CheckRep())

	_, err = core.NewBuilder(userBob, "reply to nothing").InResponseTo(nil).Build()
	require.ErrorIs(t, err, core.ErrNilPost)
}

func TestBuilder_ReplyAuthorization(t *testing.T) {
	// OnlyAuthor: everyone but the author is rejected.
	own, err := core.NewBuilder(userAlice, "no replies please").
		RestrictReplies(core.OnlyAuthor).
		Build()
	require.NoError(t, err)

	_, err = core.NewBuilder(userBob, "let me in").InResponseTo(own).Build()
	require.ErrorIs(t, err, core.ErrReplyNotAllowed)
	require.Empty(t, own.Replies(), "failed build must not link a reply")

	_, err = core.NewBuilder(userAlice, "talking to myself").InResponseTo(own).Build()
	require.NoError(t, err)

	// OnlyAuthorOrTagged: tagged users are admitted, others are not.
	tagged, err := core.NewBuilder(userAlice, "only for @super_bob99").
		RestrictReplies(core.OnlyAuthorOrTagged).
		Build()
	require.NoError(t, err)

	_, err = core.NewBuilder(userBob, "tagged, replying").InResponseTo(tagged).Build()
	require.NoError(t, err)

	_, err = core.NewBuilder(userCharlie, "not tagged").InResponseTo(tagged).Build()
	require.ErrorIs(t, err, core.ErrReplyNotAllowed)
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	// The first latched configuration error is the one surfaced.
	_, err := core.NewBuilder("", strings.Repeat("a", core.MaxPostLength+1)).
		RestrictReplies(core.ReplyRestriction(-1)).
		Build()
	require.ErrorIs(t, err, core.ErrEmptyUsername)
}

func TestBuilder_StandaloneIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		post, err := core.NewBuilder(userAlice, "hello").Build()
		require.NoError(t, err)
		_, dup := seen[post.ID()]
		require.False(t, dup, "standalone builds must never reuse ids")
		seen[post.ID()] = struct{}{}
	}
}
