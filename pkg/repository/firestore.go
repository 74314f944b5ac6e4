package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	usersCollection = "sample_users"
	postsCollection = "sample_posts"

	// Field names
	fieldID = "id"
)

type firestoreUser struct {
	ID      int    `firestore:"id"`
	Name    string `firestore:"name"`
	Email   string `firestore:"email"`
	City    string `firestore:"city"`
	Avatar  string `firestore:"avatar"`
	Street  string `firestore:"street"`
	Website string `firestore:"website"`
	Company string `firestore:"company"`
}

type firestorePost struct {
	ID     int    `firestore:"id"`
	UserID int    `firestore:"user_id"`
	Title  string `firestore:"title"`
	Body   string `firestore:"body"`
	Author string `firestore:"author"`
	Date   string `firestore:"date"`
	Likes  int    `firestore:"likes"`
}

// LoadFirestore reads the sample dataset from Firestore. It is meant to be
// called once at startup; the result seeds a Memory store.
func LoadFirestore(ctx context.Context, projectID, databaseID string) (*model.SampleData, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close firestore client", "error", err)
		}
	}()

	users, err := readCollection[firestoreUser](ctx, client, usersCollection)
	if err != nil {
		return nil, err
	}
	posts, err := readCollection[firestorePost](ctx, client, postsCollection)
	if err != nil {
		return nil, err
	}

	data := &model.SampleData{
		Users: lo.Map(users, func(u firestoreUser, _ int) model.User {
			return model.User{
				ID:      u.ID,
				Name:    u.Name,
				Email:   u.Email,
				City:    u.City,
				Avatar:  u.Avatar,
				Street:  u.Street,
				Website: u.Website,
				Company: u.Company,
			}
		}),
		Posts: lo.Map(posts, func(p firestorePost, _ int) model.Post {
			return model.Post(p)
		}),
	}

	logger.Info("Sample data loaded from firestore",
		"projectID", projectID,
		"databaseID", databaseID,
		"users", len(data.Users),
		"posts", len(data.Posts),
	)

	return data, nil
}

func readCollection[T any](ctx context.Context, client *firestore.Client, collection string) ([]T, error) {
	iter := client.Collection(collection).OrderBy(fieldID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var items []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
				return nil, goerr.Wrap(err, "failed to connect to firestore project",
					goerr.V("firestore error code", status.Code(err).String()),
				)
			}
			return nil, goerr.Wrap(err, "failed to iterate sample records",
				goerr.V("collection", collection))
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode sample record",
				goerr.V("collection", collection),
				goerr.V("doc", doc.Ref.ID))
		}
		items = append(items, item)
	}

	return items, nil
}
