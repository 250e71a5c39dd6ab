// File: errors.go
// Role: sentinel errors shared by Builder, Post, and Network.
//
// All are branchable with errors.Is and carry a "core:" prefix so that
// wrapped messages remain attributable to this package.

package core

import "errors"

// Missing-argument errors.
var (
	// ErrNilBuilder indicates a nil *Builder passed to WritePost.
	ErrNilBuilder = errors.New("core: builder must not be nil")

	// ErrNilPost indicates a nil *Post where a post was required.
	ErrNilPost = errors.New("core: post must not be nil")

	// ErrEmptyUsername indicates an empty string where a username was
	// required.
	ErrEmptyUsername = errors.New("core: username must not be empty")
)

// Invalid-value errors.
var (
	// ErrTextTooLong indicates a post body longer than MaxPostLength
	// runes.
	ErrTextTooLong = errors.New("core: post text exceeds maximum length")

	// ErrInvalidUsername indicates a username rejected by the active
	// validator.
	ErrInvalidUsername = errors.New("core: invalid username")

	// ErrDuplicateUser indicates a registration under a name that is
	// already taken.
	ErrDuplicateUser = errors.New("core: user already registered")

	// ErrUnknownUser indicates an operation on behalf of an
	// unregistered user.
	ErrUnknownUser = errors.New("core: user not registered")

	// ErrUnknownPost indicates a post id the network does not own.
	ErrUnknownPost = errors.New("core: post not found")

	// ErrUnknownParent indicates a staged parent the network does not
	// own.
	ErrUnknownParent = errors.New("core: parent post not found")

	// ErrBadRestriction indicates a ReplyRestriction outside the
	// declared values.
	ErrBadRestriction = errors.New("core: invalid reply restriction")

	// ErrSelfLike indicates an author trying to like their own post.
	ErrSelfLike = errors.New("core: authors cannot like their own posts")

	// ErrNoPosts indicates a user who has not published anything yet.
	ErrNoPosts = errors.New("core: user has no posts")
)

// Authorization errors.
var (
	// ErrReplyNotAllowed indicates a reply author not admitted by the
	// parent's restriction.
	ErrReplyNotAllowed = errors.New("core: user may not reply to this post")
)
