// Package tally is the counter-and-notes variant: a small mutable state
// persisted per-entity through a kv.Store. The counter and the note list are
// saved independently; there is no transactional guarantee across the two
// keys, which is acceptable because each mutation touches exactly one.
package tally

// #region imports
import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calibctl/internal/kv"
)

// #endregion

// #region keys

const (
	counterKey = "tally:counter"
	notesKey   = "tally:notes"
)

// #endregion keys

// #region types

// Note is one stored note.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// counterBlob and notesBlob are the persisted JSON shapes. Malformed or
// missing blobs fall back to value 0 and an empty note list.
type counterBlob struct {
	Value int `json:"value"`
}

type notesBlob struct {
	Notes []Note `json:"notes"`
}

// #endregion types

// #region controller

// Controller owns the counter value and note list. It loads persisted state
// once at construction and saves after every successful mutation; it never
// depends on persistence succeeding to keep working in-memory.
type Controller struct {
	store  kv.Store
	logger *zap.Logger

	value int
	notes []Note
}

// NewController loads persisted state from store, falling back to defaults
// on missing keys or malformed blobs. logger may be nil.
func NewController(ctx context.Context, store kv.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{store: store, logger: logger}

	var counter counterBlob
	if err := json.Unmarshal(store.Load(ctx, counterKey, []byte(`{"value":0}`)), &counter); err != nil {
		logger.Warn("malformed counter blob, using default", zap.Error(err))
		counter = counterBlob{}
	}
	c.value = counter.Value

	var notes notesBlob
	if err := json.Unmarshal(store.Load(ctx, notesKey, []byte(`{"notes":[]}`)), &notes); err != nil {
		logger.Warn("malformed notes blob, using default", zap.Error(err))
		notes = notesBlob{}
	}
	c.notes = notes.Notes

	return c
}

// #endregion controller

// #region counter-ops

// Value returns the current counter value.
func (c *Controller) Value() int {
	return c.value
}

// Increment adds one to the counter and persists it.
func (c *Controller) Increment(ctx context.Context) {
	c.value++
	c.saveCounter(ctx)
}

// Decrement subtracts one from the counter and persists it.
func (c *Controller) Decrement(ctx context.Context) {
	c.value--
	c.saveCounter(ctx)
}

// ResetValue sets the counter back to zero and persists it.
func (c *Controller) ResetValue(ctx context.Context) {
	c.value = 0
	c.saveCounter(ctx)
}

// #endregion counter-ops

// #region note-ops

// Notes returns a copy of the note list, newest last.
func (c *Controller) Notes() []Note {
	return append([]Note(nil), c.notes...)
}

// AddNote appends a note and persists the list. Blank text is a no-op
// returning an empty ID.
func (c *Controller) AddNote(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}
	note := Note{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	c.notes = append(c.notes, note)
	c.saveNotes(ctx)
	return note.ID
}

// RemoveNote deletes the note with the given ID and persists the list.
// An unknown ID is a no-op.
func (c *Controller) RemoveNote(ctx context.Context, id string) {
	kept := c.notes[:0]
	removed := false
	for _, n := range c.notes {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	c.notes = kept
	if removed {
		c.saveNotes(ctx)
	}
}

// #endregion note-ops

// #region persistence

func (c *Controller) saveCounter(ctx context.Context) {
	blob, _ := json.Marshal(counterBlob{Value: c.value})
	if err := c.store.Save(ctx, counterKey, blob); err != nil {
		c.logger.Warn("save counter failed, continuing in-memory", zap.Error(err))
	}
}

func (c *Controller) saveNotes(ctx context.Context) {
	notes := c.notes
	if notes == nil {
		notes = []Note{}
	}
	blob, _ := json.Marshal(notesBlob{Notes: notes})
	if err := c.store.Save(ctx, notesKey, blob); err != nil {
		c.logger.Warn("save notes failed, continuing in-memory", zap.Error(err))
	}
}

// #endregion persistence
