package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecomshop/catalog/internal/product"
)

// ErrSubmitInFlight is returned when Submit is called while a previous submit
// has not finished yet. Submits are single-flight.
var ErrSubmitInFlight = errors.New("submit already in progress")

// State is the form controller's position in the submit lifecycle:
// Idle -> Validating -> (UploadingImage) -> Saving -> Done | Failed.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateUploadingImage
	StateSaving
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateUploadingImage:
		return "uploading-image"
	case StateSaving:
		return "saving"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// formAPI is the slice of the API client the form needs.
type formAPI interface {
	Create(ctx context.Context, in product.Input) (*product.Product, error)
	Update(ctx context.Context, id string, in product.Input) (*product.Product, error)
	UploadImage(ctx context.Context, path string) (string, error)
}

// Form collects product field edits and an optional file selection, and
// orchestrates upload-then-save on submit. Field values are kept on failure
// so the user can retry without re-entering data.
type Form struct {
	client formAPI

	// Raw field values as entered by the user.
	Name        string
	Description string
	Price       string

	id           string // empty means create mode
	image        string // last known image URL
	selectedFile string

	state    State
	message  string
	saved    *product.Product
	inFlight bool
}

// NewForm creates a form in create mode.
func NewForm(client formAPI) *Form {
	return &Form{client: client}
}

// NewEditForm creates a form in edit mode, prefilled from an existing record.
func NewEditForm(client formAPI, p *product.Product) *Form {
	return &Form{
		client:      client,
		id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		image:       p.Image,
	}
}

// SelectFile records a local file to upload on the next submit and switches
// the preview to it.
func (f *Form) SelectFile(path string) {
	f.selectedFile = path
}

// ClearFile drops the file selection; the preview reverts to the previously
// known image.
func (f *Form) ClearFile() {
	f.selectedFile = ""
}

// Preview returns what the user currently sees: the selected file when one is
// chosen, otherwise the existing image URL (blank when creating).
func (f *Form) Preview() string {
	if f.selectedFile != "" {
		return f.selectedFile
	}
	return f.image
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Message returns the last user-facing message.
func (f *Form) Message() string { return f.message }

// Saved returns the record from the last successful submit, or nil.
func (f *Form) Saved() *product.Product { return f.saved }

// DetailPath returns the API path of the saved record, for navigation after a
// successful edit. The caller decides whether and when to navigate.
func (f *Form) DetailPath() string {
	if f.id == "" {
		return ""
	}
	return "/products/" + f.id
}

// Submit runs the whole lifecycle: local validation, image upload when a file
// is selected, then create or update. An upload failure aborts the submit and
// no save call is made.
func (f *Form) Submit(ctx context.Context) error {
	if f.inFlight {
		return ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	f.state = StateValidating
	f.message = ""

	in, err := f.input()
	if err != nil {
		// Rejected before anything left the form: back to Idle.
		f.state = StateIdle
		f.message = err.Error()
		return err
	}
	if err := product.Validate(in); err != nil {
		f.state = StateIdle
		f.message = err.Error()
		return err
	}

	imageURL := f.image
	if f.selectedFile != "" {
		f.state = StateUploadingImage
		url, err := f.client.UploadImage(ctx, f.selectedFile)
		if err != nil {
			f.state = StateFailed
			f.message = fmt.Sprintf("Image upload error: %v", err)
			return err
		}
		imageURL = url
		f.image = url
		f.selectedFile = ""
	}

	f.state = StateSaving
	in.Image = imageURL

	var saved *product.Product
	if f.id == "" {
		saved, err = f.client.Create(ctx, in)
	} else {
		saved, err = f.client.Update(ctx, f.id, in)
	}
	if err != nil {
		f.state = StateFailed
		f.message = fmt.Sprintf("Error: %v", err)
		return err
	}

	f.saved = saved
	f.id = saved.ID
	f.image = saved.Image
	f.state = StateDone
	f.message = "Product saved successfully!"
	return nil
}

// input builds a product.Input from the raw field values. Empty required
// fields and non-numeric or negative prices are rejected here, before the
// shared validator runs.
func (f *Form) input() (product.Input, error) {
	if f.Name == "" || f.Description == "" || f.Price == "" {
		return product.Input{}, errors.New("Please fill in all required fields.")
	}
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price < 0 {
		return product.Input{}, errors.New("Price must be a non-negative number.")
	}
	return product.Input{
		Name:        f.Name,
		Description: f.Description,
		Price:       &price,
	}, nil
}
