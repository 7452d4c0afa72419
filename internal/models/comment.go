package models

import (
	"time"
)

// Comment represents one public message on the board.
// Comments are append-only: once stored they are never mutated,
// only removed by an admin delete.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Body      string    `json:"comment" db:"body"`
	Author    string    `json:"name" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentResponse is the wire shape of a comment in GET /api/comments.
// Timestamp carries the display rendering (Pacific time), not the
// stored UTC instant.
type CommentResponse struct {
	ID        int64  `json:"id"`
	Body      string `json:"comment"`
	Author    string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// SubmitCommentRequest is the body of POST /api/comments
type SubmitCommentRequest struct {
	Body   string `json:"comment"`
	Author string `json:"name"`
}

// LoginRequest is the body of POST /api/admin/login
type LoginRequest struct {
	Password string `json:"password"`
}

// AnonymousAuthor is substituted when the author field is absent or
// blank after trimming
const AnonymousAuthor = "anonymous"

// Field limits applied after trimming; longer input is truncated,
// never rejected
const (
	MaxBodyLen   = 500
	MaxAuthorLen = 50
)
