package product

import (
	"database/sql"

	"modman/internal/core"
)

// Store is the Product persistence adapter on the shared CRUD base.
type Store = core.Store[Product, ProductCreate, ProductUpdate]

// NewStore wires the products table into the shared store.
func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Table:   Table,
		Columns: []string{"id", "created_at", "updated_at", "name", "description", "price", "quantity", "is_active"},
		ScanRow: func(scan func(dest ...any) error) (Product, error) {
			var m Product
			var desc sql.NullString
			if err := scan(&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Name, &desc, &m.Price, &m.Quantity, &m.IsActive); err != nil {
				return m, err
			}
			m.Description = desc.String
			return m, nil
		},
		InsertArgs: func(id, now string, in ProductCreate) []any {
			active := true
			if in.IsActive != nil {
				active = *in.IsActive
			}
			return []any{id, now, now, in.Name, nullable(in.Description), in.Price, in.Quantity, active}
		},
		UpdateSet: func(in ProductUpdate) ([]string, []any) {
			var cols []string
			var args []any
			if in.Name != nil {
				cols = append(cols, "name")
				args = append(args, *in.Name)
			}
			if in.Description != nil {
				cols = append(cols, "description")
				args = append(args, nullable(*in.Description))
			}
			if in.Price != nil {
				cols = append(cols, "price")
				args = append(args, *in.Price)
			}
			if in.Quantity != nil {
				cols = append(cols, "quantity")
				args = append(args, *in.Quantity)
			}
			if in.IsActive != nil {
				cols = append(cols, "is_active")
				args = append(args, *in.IsActive)
			}
			return cols, args
		},
	}
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
