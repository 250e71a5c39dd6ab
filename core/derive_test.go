package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neysofu/uni-microblog/core"
)

// withFollowers drops entries with no followers, aligning a derived
// map (authors only) with a network map (all registered users).
func withFollowers(m map[string][]string) map[string][]string {
	out := make(map[string][]string)
	for user, fans := range m {
		if len(fans) > 0 {
			out[user] = fans
		}
	}
	return out
}

func TestGuessFollowers_MatchesIncrementalDerivation(t *testing.T) {
	net := core.NewNetwork(core.WithClock(testClock()))
	for _, user := range []string{userAlice, userBob, userCharlie} {
		require.NoError(t, net.Register(user))
	}

	p1, err := net.WritePost(core.NewBuilder(userAlice, "Ciao"))
	require.NoError(t, err)
	p2, err := net.WritePost(core.NewBuilder(userAlice, "Buonasera"))
	require.NoError(t, err)
	p3, err := net.WritePost(core.NewBuilder(userCharlie, "Ciao Alice, come stai?").InResponseTo(p1))
	require.NoError(t, err)

	// A churn of likes and dislikes, across presentation and ordinary
	// posts; the black-box re-derivation must agree at every step.
	steps := []struct {
		op   func(*core.Post, string) error
		post *core.Post
		user string
	}{
		{net.Like, p1, userCharlie},
		{net.Like, p2, userCharlie},
		{net.Dislike, p2, userCharlie},
		{net.Like, p2, userCharlie},
		{net.Like, p3, userBob},
		{net.Like, p3, userAlice},
		{net.Dislike, p1, userCharlie},
		{net.Like, p1, userBob},
	}
	for i, step := range steps {
		require.NoError(t, step.op(step.post, step.user), "step %d", i)

		guessed, err := core.GuessFollowers(net.Posts())
		require.NoError(t, err)
		require.Equal(t,
			withFollowers(net.Followers()),
			withFollowers(guessed),
			"incremental and re-derived follower maps diverged at step %d", i)
	}
}

func TestGuessFollowers_FirstPostWins(t *testing.T) {
	// Only likes on the first post per author count.
	first, err := core.NewBuilder(userAlice, "first").Build()
	require.NoError(t, err)
	second, err := core.NewBuilder(userAlice, "second").Build()
	require.NoError(t, err)
	_, err = first.ToggleLike(userBob)
	require.NoError(t, err)
	_, err = second.ToggleLike(userCharlie)
	require.NoError(t, err)

	followers, err := core.GuessFollowers([]*core.Post{first, second})
	require.NoError(t, err)
	require.Equal(t, map[string][]string{userAlice: {userBob}}, followers)

	_, err = core.GuessFollowers([]*core.Post{first, nil})
	require.ErrorIs(t, err, core.ErrNilPost)
}

func TestReverseFollowRelation(t *testing.T) {
	followers := map[string][]string{
		"mario":    {"beatrice", "filippo", "lucia"},
		"beatrice": {},
		"filippo":  {"mario", "beatrice"},
		"lucia":    {"filippo"},
	}
	followees := core.ReverseFollowRelation(followers)
	require.Equal(t, map[string][]string{
		"mario":    {"filippo"},
		"beatrice": {"filippo", "mario"},
		"filippo":  {"lucia", "mario"},
		"lucia":    {"mario"},
	}, followees)

	// Inverting twice restores the original relation.
	require.Equal(t, map[string][]string{
		"mario":    {"beatrice", "filippo", "lucia"},
		"beatrice": {},
		"filippo":  {"beatrice", "mario"},
		"lucia":    {"filippo"},
	}, core.ReverseFollowRelation(followees))
}

func TestInfluencers(t *testing.T) {
	followers := map[string][]string{
		"mario":    {"beatrice", "filippo", "lucia"}, // 3 followers, 0 followees
		"beatrice": {},                               // 0 followers, 2 followees
		"filippo":  {"beatrice"},                     // 1 follower, 1 followee
		"lucia":    {},                               // 0 followers, 1 followee
	}
	require.Equal(t, []string{"mario"}, core.Influencers(followers))
	require.Empty(t, core.Influencers(map[string][]string{}))
}

func TestAuthorsOf(t *testing.T) {
	pa, err := core.NewBuilder(userAlice, "one").Build()
	require.NoError(t, err)
	pb, err := core.NewBuilder(userBob, "two").Build()
	require.NoError(t, err)
	pa2, err := core.NewBuilder(userAlice, "three").Build()
	require.NoError(t, err)

	authors, err := core.AuthorsOf([]*core.Post{pb, pa, pa2})
	require.NoError(t, err)
	require.Equal(t, []string{userAlice, userBob}, authors)

	authors, err = core.AuthorsOf(nil)
	require.NoError(t, err)
	require.Empty(t, authors)

	_, err = core.AuthorsOf([]*core.Post{pa, nil})
	require.ErrorIs(t, err, core.ErrNilPost)
}
