package model

import (
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Record is a single demo record shown in a display region. Records are
// values: once created they are never modified, only copied.
type Record interface {
	RecordID() int
	Kind() types.RecordKind
}

// User represents a user record
type User struct {
	ID      int    `json:"id" yaml:"id" validate:"gt=0"`
	Name    string `json:"name" yaml:"name" validate:"required"`
	Email   string `json:"email" yaml:"email" validate:"required,email"`
	City    string `json:"city" yaml:"city"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
}

// RecordID implements Record
func (u User) RecordID() int { return u.ID }

// Kind implements Record
func (u User) Kind() types.RecordKind { return types.RecordKindUser }

// Post represents a blog post record
type Post struct {
	ID     int    `json:"id" yaml:"id" validate:"gt=0"`
	UserID int    `json:"userId,omitempty" yaml:"user_id,omitempty"`
	Title  string `json:"title" yaml:"title" validate:"required"`
	Body   string `json:"body" yaml:"body"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	Likes  int    `json:"likes" yaml:"likes" validate:"gte=0"`
}

// RecordID implements Record
func (p Post) RecordID() int { return p.ID }

// Kind implements Record
func (p Post) Kind() types.RecordKind { return types.RecordKindPost }

// UsersToRecords converts users into a fresh record slice
func UsersToRecords(users []User) []Record {
	records := make([]Record, len(users))
	for i, u := range users {
		records[i] = u
	}
	return records
}

// PostsToRecords converts posts into a fresh record slice
func PostsToRecords(posts []Post) []Record {
	records := make([]Record, len(posts))
	for i, p := range posts {
		records[i] = p
	}
	return records
}
