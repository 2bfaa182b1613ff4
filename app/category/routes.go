package category

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Register mounts the category CRUD endpoints on the API.
func Register(api huma.API, db *sql.DB, log *zap.Logger) {
	svc := NewService(NewStore(db), log)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Tags:        []string{"Category"},
	}, func(ctx context.Context, input *struct {
		Offset int `query:"offset" default:"0"`
		Limit  int `query:"limit" default:"100"`
	}) (*struct {
		Body []Category `json:"body"`
	}, error) {
		items, err := svc.List(ctx, input.Offset, input.Limit)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body []Category `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get category",
		Tags:        []string{"Category"},
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct {
		Body Category `json:"body"`
	}, error) {
		m, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Category `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/categories",
		Summary:       "Create category",
		Tags:          []string{"Category"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *struct {
		Body CategoryCreate `json:"body"`
	}) (*struct {
		Body Category `json:"body"`
	}, error) {
		m, err := svc.Create(ctx, input.Body)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Category `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}",
		Summary:     "Update category",
		Tags:        []string{"Category"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *struct {
		ID   string         `path:"id"`
		Body CategoryUpdate `json:"body"`
	}) (*struct {
		Body Category `json:"body"`
	}, error) {
		m, err := svc.Update(ctx, input.ID, input.Body)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Category `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{id}",
		Summary:       "Delete category",
		Tags:          []string{"Category"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapErr(err)
		}
		return &struct{}{}, nil
	})
}

func mapErr(err error) error {
	var nf NotFoundError
	if errors.As(err, &nf) {
		return huma.Error404NotFound(err.Error())
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return err
}
