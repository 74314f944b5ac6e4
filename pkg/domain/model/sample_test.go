package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

func TestSampleDataValidate(t *testing.T) {
	t.Run("Default data is valid", func(t *testing.T) {
		data := model.DefaultSampleData()
		gt.NoError(t, data.Validate())
		gt.A(t, data.Users).Length(4)
		gt.A(t, data.Posts).Length(3)
	})

	t.Run("Invalid email", func(t *testing.T) {
		data := &model.SampleData{
			Users: []model.User{{ID: 1, Name: "Ana", Email: "not-an-email"}},
		}
		err := data.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagInvalidSampleData))
		gt.S(t, err.Error()).Contains("invalid user record")
	})

	t.Run("Missing post title", func(t *testing.T) {
		data := &model.SampleData{
			Posts: []model.Post{{ID: 1, Body: "no title"}},
		}
		err := data.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid post record")
	})

	t.Run("Non-positive ID", func(t *testing.T) {
		data := &model.SampleData{
			Posts: []model.Post{{ID: 0, Title: "zero"}},
		}
		gt.Error(t, data.Validate())
	})

	t.Run("Duplicate user ID", func(t *testing.T) {
		data := &model.SampleData{
			Users: []model.User{
				{ID: 1, Name: "Ana", Email: "ana@example.com"},
				{ID: 1, Name: "Carlos", Email: "carlos@example.com"},
			},
		}
		err := data.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate user ID")
	})

	t.Run("Empty data is valid", func(t *testing.T) {
		gt.NoError(t, (&model.SampleData{}).Validate())
	})
}

func TestRecordKinds(t *testing.T) {
	gt.Equal(t, types.RecordKindUser, model.User{ID: 1}.Kind())
	gt.Equal(t, types.RecordKindPost, model.Post{ID: 1}.Kind())
	gt.Equal(t, 7, model.Post{ID: 7}.RecordID())
}

func TestNewNotification(t *testing.T) {
	t.Run("Valid notification", func(t *testing.T) {
		n, err := model.NewNotification("loaded", types.NotificationSuccess)
		gt.NoError(t, err).Required()
		gt.Equal(t, "loaded", n.Message)
		gt.Equal(t, types.NotificationVisible, n.Phase)
		gt.Equal(t, "check-circle", n.Icon())
		gt.True(t, n.ID != "")
	})

	t.Run("Error icon", func(t *testing.T) {
		n, err := model.NewNotification("failed", types.NotificationError)
		gt.NoError(t, err).Required()
		gt.Equal(t, "exclamation-triangle", n.Icon())
	})

	t.Run("Empty message", func(t *testing.T) {
		n, err := model.NewNotification("", types.NotificationInfo)
		gt.Error(t, err)
		gt.V(t, n).Nil()
	})

	t.Run("Invalid kind", func(t *testing.T) {
		_, err := model.NewNotification("x", types.NotificationKind("warning"))
		gt.Error(t, err)
	})
}
