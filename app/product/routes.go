package product

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Register mounts the product CRUD endpoints on the API.
func Register(api huma.API, db *sql.DB, log *zap.Logger) {
	svc := NewService(NewStore(db), log)

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/products",
		Summary:     "List products",
		Tags:        []string{"Product"},
	}, func(ctx context.Context, input *struct {
		Offset int `query:"offset" default:"0"`
		Limit  int `query:"limit" default:"100"`
	}) (*struct {
		Body []Product `json:"body"`
	}, error) {
		items, err := svc.List(ctx, input.Offset, input.Limit)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body []Product `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/products/{id}",
		Summary:     "Get product",
		Tags:        []string{"Product"},
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct {
		Body Product `json:"body"`
	}, error) {
		m, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Product `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/products",
		Summary:       "Create product",
		Tags:          []string{"Product"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *struct {
		Body ProductCreate `json:"body"`
	}) (*struct {
		Body Product `json:"body"`
	}, error) {
		m, err := svc.Create(ctx, input.Body)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Product `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPatch,
		Path:        "/products/{id}",
		Summary:     "Update product",
		Tags:        []string{"Product"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *struct {
		ID   string        `path:"id"`
		Body ProductUpdate `json:"body"`
	}) (*struct {
		Body Product `json:"body"`
	}, error) {
		m, err := svc.Update(ctx, input.ID, input.Body)
		if err != nil {
			return nil, mapErr(err)
		}
		return &struct {
			Body Product `json:"body"`
		}{Body: m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Method:        http.MethodDelete,
		Path:          "/products/{id}",
		Summary:       "Delete product",
		Tags:          []string{"Product"},
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
