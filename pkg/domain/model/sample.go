package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

var validate = validator.New()

// SampleData holds the static records served by simulated requests
type SampleData struct {
	Users []User `yaml:"users"`
	Posts []Post `yaml:"posts"`
}

// Validate validates every record and rejects duplicate IDs per kind
func (d *SampleData) Validate() error {
	userIDs := make(map[int]bool)
	for i, u := range d.Users {
		if err := validate.Struct(u); err != nil {
			return goerr.Wrap(err, "invalid user record",
				goerr.V("index", i),
				goerr.V("id", u.ID),
				goerr.T(ErrTagInvalidSampleData))
		}
		if userIDs[u.ID] {
			return goerr.New("duplicate user ID",
				goerr.V("id", u.ID),
				goerr.T(ErrTagInvalidSampleData))
		}
		userIDs[u.ID] = true
	}

	postIDs := make(map[int]bool)
	for i, p := range d.Posts {
		if err := validate.Struct(p); err != nil {
			return goerr.Wrap(err, "invalid post record",
				goerr.V("index", i),
				goerr.V("id", p.ID),
				goerr.T(ErrTagInvalidSampleData))
		}
		if postIDs[p.ID] {
			return goerr.New("duplicate post ID",
				goerr.V("id", p.ID),
				goerr.T(ErrTagInvalidSampleData))
		}
		postIDs[p.ID] = true
	}

	return nil
}

// DefaultSampleData returns the built-in demo dataset
func DefaultSampleData() *SampleData {
	return &SampleData{
		Users: []User{
			{ID: 1, Name: "Ana García", Email: "ana@example.com", City: "Madrid", Avatar: "👩‍💼"},
			{ID: 2, Name: "Carlos López", Email: "carlos@example.com", City: "Barcelona", Avatar: "👨‍💻"},
			{ID: 3, Name: "María Rodríguez", Email: "maria@example.com", City: "Valencia", Avatar: "👩‍🎨"},
			{ID: 4, Name: "David Martínez", Email: "david@example.com", City: "Sevilla", Avatar: "👨‍🔬"},
		},
		Posts: []Post{
			{
				ID:     1,
				Title:  "Introduction to AJAX",
				Body:   "AJAX changed the way web applications interact with servers...",
				Author: "Ana García",
				Date:   "2023-10-01",
				Likes:  42,
			},
			{
				ID:     2,
				Title:  "Fetch API vs XMLHttpRequest",
				Body:   "A comparison of the two main ways to send AJAX requests...",
				Author: "Carlos López",
				Date:   "2023-10-02",
				Likes:  28,
			},
			{
				ID:     3,
				Title:  "Handling Errors in AJAX",
				Body:   "How to build robust error handling into your requests...",
				Author: "María Rodríguez",
				Date:   "2023-10-03",
				Likes:  35,
			},
		},
	}
}
