package panel

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/store"
)

var (
	// ErrCancelled means the user declined the confirmation prompt. The
	// operation is a silent no-op, not a failure.
	ErrCancelled = errors.New("cancelled by user")
	// ErrNotFound means the targeted record no longer exists. Benign:
	// logged and reported, never fatal to the panel.
	ErrNotFound = errors.New("record not found")
	// ErrReadOnly means the schema does not allow this mutation.
	ErrReadOnly = errors.New("panel does not allow this operation")
)

// Remote is the slice of the gateway a server-backed controller uses.
type Remote interface {
	List(ctx context.Context) ([]entity.Record, error)
	Create(ctx context.Context, fields map[string]any) (entity.Record, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ChangeFunc is invoked after every successful mutation so the caller
// can refresh aggregate stats and record activity. Notification is an
// explicit call, not a subscription.
type ChangeFunc func(action Action, schema entity.Schema, rec entity.Record)

// Controller drives one entity panel: paged listing, create/edit forms,
// confirmed mutations and CSV export. Server-backed entities attempt the
// remote call first but always complete against the local mirror, so a
// dead API degrades the panel instead of breaking it.
type Controller struct {
	schema   entity.Schema
	store    store.Store
	gate     Gate
	remote   Remote          // nil unless server-backed
	fallback []entity.Record // sample data used when remote sync fails on an empty mirror
	onChange ChangeFunc
}

func NewController(schema entity.Schema, st store.Store, gate Gate) *Controller {
	return &Controller{schema: schema, store: st, gate: gate}
}

// WithRemote attaches the gateway adapter and the fixed sample records
// substituted when the remote is unreachable.
func (c *Controller) WithRemote(remote Remote, fallback []entity.Record) *Controller {
	c.remote = remote
	c.fallback = fallback
	return c
}

// WithChangeFunc sets the post-mutation notification hook.
func (c *Controller) WithChangeFunc(fn ChangeFunc) *Controller {
	c.onChange = fn
	return c
}

func (c *Controller) Schema() entity.Schema { return c.schema }
func (c *Controller) Store() store.Store    { return c.store }

// Page is one slice of the listing.
type Page struct {
	Records    []entity.Record `json:"records"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	TotalCount int             `json:"totalCount"`
}

// ListPage returns page k (1-indexed, clamped into range) of the current
// collection in insertion order. An empty collection still has one page.
func (c *Controller) ListPage(page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	recs := c.store.List()
	total := len(recs)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Records:    recs[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
	}
}

// BeginCreate returns a blank form seeded with schema defaults.
func (c *Controller) BeginCreate() *Form {
	return &Form{Values: c.schema.Defaults()}
}

// BeginEdit returns a form populated from the record's editable fields.
// The id, timestamp and immutable counters are retained off-form for the
// eventual write-back.
func (c *Controller) BeginEdit(id string) (*Form, error) {
	rec, ok := c.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	form := &Form{
		EditingID:  id,
		Values:     make(map[string]string),
		createdAt:  rec.CreatedAt,
		immutables: make(map[string]any),
	}
	for _, f := range c.schema.Fields {
		switch {
		case f.Immutable:
			form.immutables[f.Name] = rec.Fields[f.Name]
		case f.Kind == entity.Images:
			form.Images = rec.Strings(f.Name)
		case f.Kind == entity.Secret:
			// hashes never travel back into the form
			form.Values[f.Name] = ""
		default:
			form.Values[f.Name] = rec.String(f.Name)
		}
	}
	return form, nil
}

// Submit validates the form, asks the gate, then applies the create or
// update. Remote failures for server-backed entities are logged and the
// operation completes against the local mirror.
func (c *Controller) Submit(ctx context.Context, form *Form) (entity.Record, error) {
	if c.schema.ReadOnly || c.schema.AppendOnly {
		return entity.Record{}, ErrReadOnly
	}

	editing := form.EditingID != ""
	var prev *entity.Record
	if editing {
		existing, ok := c.store.Get(form.EditingID)
		if !ok {
			log.Printf("%s: submit targeted missing record %s", c.schema.Name, form.EditingID)
			return entity.Record{}, ErrNotFound
		}
		prev = &existing
	}

	fields, err := parse(c.schema, form, prev)
	if err != nil {
		return entity.Record{}, err
	}

	action, message := ActionCreate, fmt.Sprintf("Add this %s?", singular(c.schema))
	if editing {
		action, message = ActionUpdate, fmt.Sprintf("Update this %s?", singular(c.schema))
	}
	if !c.gate.Confirm(ctx, action, message) {
		return entity.Record{}, ErrCancelled
	}

	var rec entity.Record
	if editing {
		// immutable fields come from the pre-edit record, not the form
		for _, f := range c.schema.Fields {
			if f.Immutable {
				fields[f.Name] = prev.Fields[f.Name]
			}
		}
		if c.remote != nil {
			if err := c.remote.Update(ctx, form.EditingID, fields); err != nil {
				log.Printf("%s: remote update failed, keeping local copy: %v", c.schema.Name, err)
			}
		}
		updated, ok := c.store.Replace(form.EditingID, fields)
		if !ok {
			return entity.Record{}, ErrNotFound
		}
		rec = updated
	} else {
		for _, f := range c.schema.Fields {
			if f.Immutable {
				fields[f.Name] = zeroValue(f)
			}
		}
		if c.remote != nil {
			remoteRec, err := c.remote.Create(ctx, fields)
			if err != nil {
				log.Printf("%s: remote create failed, keeping local copy: %v", c.schema.Name, err)
			} else if remoteRec.ID != "" {
				// keep the server-assigned id on the mirror
				remoteRec.Fields = fields
				rec = c.store.InsertRecord(remoteRec)
				c.notify(action, rec)
				return rec, nil
			}
		}
		rec = c.store.Insert(fields)
	}

	c.notify(action, rec)
	return rec, nil
}

// RequestDelete removes one record after a warning prompt. Declining is
// a silent no-op; a missing id is benign.
func (c *Controller) RequestDelete(ctx context.Context, id string) error {
	if c.schema.ReadOnly {
		return ErrReadOnly
	}
	message := fmt.Sprintf("Delete this %s? This action cannot be undone!", singular(c.schema))
	if !c.gate.Confirm(ctx, ActionDelete, message) {
		return ErrCancelled
	}

	if c.remote != nil {
		if err := c.remote.Delete(ctx, id); err != nil {
			log.Printf("%s: remote delete failed, removing local copy: %v", c.schema.Name, err)
		}
	}
	if !c.store.Remove(id) {
		log.Printf("%s: delete targeted missing record %s", c.schema.Name, id)
		return nil
	}
	c.notify(ActionDelete, entity.Record{ID: id})
	return nil
}

// Sync replaces the local mirror with the remote collection. On failure
// an empty mirror is seeded with the fixed sample data instead, so the
// panel always has something to show.
func (c *Controller) Sync(ctx context.Context) error {
	if c.remote == nil {
		return nil
	}
	recs, err := c.remote.List(ctx)
	if err != nil {
		log.Printf("%s: remote list failed: %v", c.schema.Name, err)
		if c.store.Len() == 0 && len(c.fallback) > 0 {
			c.store.ReplaceAll(c.fallback)
		}
		return err
	}
	if len(recs) == 0 && len(c.fallback) > 0 {
		c.store.ReplaceAll(c.fallback)
		return nil
	}
	c.store.ReplaceAll(recs)
	return nil
}

func (c *Controller) notify(action Action, rec entity.Record) {
	if c.onChange != nil {
		c.onChange(action, c.schema, rec)
	}
}

func singular(s entity.Schema) string {
	name := s.Title
	if name == "" {
		name = s.Name
	}
	return name
}

// ExportCSV serializes the whole collection in list order.
func (c *Controller) ExportCSV() (string, []byte) {
	return c.schema.CSVFile, ExportCSV(c.schema, c.store.List())
}
