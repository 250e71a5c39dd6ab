// File: builder.go
// Role: staged, validating construction of Posts.
//
// A Builder is configured fluently; the first configuration error is
// latched and surfaced by Build, so call sites can chain without
// checking every step. InResponseTo is the single authorization
// checkpoint for the whole reply tree: a reply can only be staged if
// the parent's restriction admits the author.

package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/neysofu/uni-microblog/username"
)

// Builder stages the construction of a single Post from an author and
// a body of text, with an optional parent and a reply restriction.
//
// The zero value is not ready for use; obtain instances through
// NewBuilder.
type Builder struct {
	author      string
	text        string
	parent      *Post
	restriction ReplyRestriction

	// First configuration error; latched, surfaced by Build.
	err error
}

// NewBuilder returns a Builder for a post by author with the given
// body. An empty author or a body longer than MaxPostLength runes is
// latched as an error and surfaced by Build. The reply restriction
// defaults to Everyone.
func NewBuilder(author, text string) *Builder {
	b := &Builder{author: author, text: text}
	if author == "" {
		b.latch(ErrEmptyUsername)
	}
	if len([]rune(text)) > MaxPostLength {
		b.latch(ErrTextTooLong)
	}

	return b
}

// RestrictReplies sets who may reply to the post. Out-of-range values
// latch ErrBadRestriction.
func (b *Builder) RestrictReplies(r ReplyRestriction) *Builder {
	if !r.Valid() {
		b.latch(ErrBadRestriction)
		return b
	}
	b.restriction = r

	return b
}

// InResponseTo stages the post as a reply to parent. A nil parent
// latches ErrNilPost; a parent whose restriction does not admit the
// builder's author latches ErrReplyNotAllowed. This is the only
// authorization checkpoint for replies.
func (b *Builder) InResponseTo(parent *Post) *Builder {
	if parent == nil {
		b.latch(ErrNilPost)
		return b
	}
	if !parent.UserCanReply(b.author) {
		b.latch(ErrReplyNotAllowed)
		return b
	}
	b.parent = parent

	return b
}

// Build produces the Post: it assigns an id, captures the current
// time, initializes empty like and reply sets, parses hashtags and
// mentions from the body, and, if a parent was staged, appends the
// new post to the parent's replies. Construction and linking are a
// single step; on error no state is touched.
//
// Standalone builds validate the author against the standard username
// rules and draw random 128-bit ids, so posts built outside a Network
// never collide. Posts published through Network.WritePost use the
// network's validator, id sequence, and clock instead.
func (b *Builder) Build() (*Post, error) {
	return b.build(defaultBuildValidator, uuid.NewString(), time.Now())
}

// latch records the first configuration error.
func (b *Builder) latch(err error) {
	if b.err == nil {
		b.err = err
	}
}

// build performs the actual construction with injected identity,
// validator, and timestamp. The timestamp is bumped to strictly after
// the parent's when the clock has not advanced past it. Linking into
// the parent happens last, after every fallible check, so a failed
// build leaves no trace.
func (b *Builder) build(v UsernameValidator, id string, now time.Time) (*Post, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !v.IsValid(b.author) {
		return nil, ErrInvalidUsername
	}

	stamp := now
	if b.parent != nil && !stamp.After(b.parent.stamp) {
		stamp = b.parent.stamp.Add(time.Nanosecond)
	}

	hashtags, taggedUsers := parseTokens(b.text)
	p := &Post{
		id:          id,
		author:      b.author,
		text:        b.text,
		stamp:       stamp,
		restriction: b.restriction,
		likes:       make(map[string]struct{}),
		hashtags:    hashtags,
		taggedUsers: taggedUsers,
	}
	if b.parent != nil {
		p.parentID = b.parent.id
		b.parent.replies = append(b.parent.replies, p)
	}

	return p, nil
}

var defaultBuildValidator = username.New()
