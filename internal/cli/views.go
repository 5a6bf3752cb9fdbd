package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ecomshop/catalog/internal/product"
)

// listAPI and detailAPI are the slices of the API client each view needs.
type listAPI interface {
	List(ctx context.Context) ([]product.Product, error)
}

type detailAPI interface {
	Get(ctx context.Context, id string) (*product.Product, error)
	Delete(ctx context.Context, id string) error
}

// ListView fetches the whole catalog once and renders exactly one of three
// states: loading, error, or the collection.
type ListView struct {
	client   listAPI
	products []product.Product
	err      error
	loaded   bool
}

// NewListView creates a list view backed by the given client.
func NewListView(client listAPI) *ListView {
	return &ListView{client: client}
}

// Load fetches all products. Called once per view.
func (v *ListView) Load(ctx context.Context) {
	v.products, v.err = v.client.List(ctx)
	v.loaded = true
}

// Render writes the view's current state to w.
func (v *ListView) Render(w io.Writer) {
	switch {
	case !v.loaded:
		fmt.Fprintln(w, "Loading products...")
	case v.err != nil:
		fmt.Fprintf(w, "Error: %v\n", v.err)
	case len(v.products) == 0:
		fmt.Fprintln(w, "No products found. Add some!")
	default:
		fmt.Fprintf(w, "%-36s  %-30s  %10s\n", "ID", "NAME", "PRICE")
		for _, p := range v.products {
			fmt.Fprintf(w, "%-36s  %-30s  %10.2f\n", p.ID, truncate(p.Name, 30), p.Price)
		}
	}
}

// DetailView fetches one product by id and renders it with the same
// three-state contract as ListView. It also carries the delete action.
type DetailView struct {
	client  detailAPI
	id      string
	product *product.Product
	err     error
	loaded  bool
}

// NewDetailView creates a detail view for the record with the given id.
func NewDetailView(client detailAPI, id string) *DetailView {
	return &DetailView{client: client, id: id}
}

// Load fetches the product.
func (v *DetailView) Load(ctx context.Context) {
	v.product, v.err = v.client.Get(ctx, v.id)
	v.loaded = true
}

// Render writes the view's current state to w.
func (v *DetailView) Render(w io.Writer) {
	switch {
	case !v.loaded:
		fmt.Fprintln(w, "Loading product...")
	case v.err != nil:
		fmt.Fprintf(w, "Error: %v\n", v.err)
	default:
		p := v.product
		fmt.Fprintf(w, "ID:          %s\n", p.ID)
		fmt.Fprintf(w, "Name:        %s\n", p.Name)
		fmt.Fprintf(w, "Description: %s\n", p.Description)
		fmt.Fprintf(w, "Price:       %.2f\n", p.Price)
		if p.Image != "" {
			fmt.Fprintf(w, "Image:       %s\n", p.Image)
		}
	}
}

// Delete removes the record after explicit confirmation. It returns true when
// the record was deleted and the caller should navigate back to the list; on
// failure the error is returned and the record is left intact.
func (v *DetailView) Delete(ctx context.Context, confirm func(id string) bool) (bool, error) {
	if !confirm(v.id) {
		return false, nil
	}
	if err := v.client.Delete(ctx, v.id); err != nil {
		return false, err
	}
	return true, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
