package tally

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// #region store-mock

// fakeStore is an in-memory kv.Store with switchable failure modes.
type fakeStore struct {
	blobs    map[string][]byte
	saveErr  error
	loadFail bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: map[string][]byte{}}
}

func (f *fakeStore) Load(_ context.Context, key string, fallback []byte) []byte {
	if f.loadFail {
		return fallback
	}
	if v, ok := f.blobs[key]; ok {
		return v
	}
	return fallback
}

func (f *fakeStore) Save(_ context.Context, key string, value []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.blobs[key] = value
	return nil
}

func (f *fakeStore) Close() error { return nil }

// #endregion store-mock

func TestNewController_Defaults(t *testing.T) {
	c := NewController(context.Background(), newFakeStore(), nil)
	assert.Equal(t, 0, c.Value())
	assert.Empty(t, c.Notes())
}

func TestCounterRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	c := NewController(ctx, store, nil)
	c.Increment(ctx)
	c.Increment(ctx)
	c.Decrement(ctx)
	assert.Equal(t, 1, c.Value())

	// A second controller over the same store sees the persisted value.
	c2 := NewController(ctx, store, nil)
	assert.Equal(t, 1, c2.Value())

	c2.ResetValue(ctx)
	assert.Equal(t, 0, NewController(ctx, store, nil).Value())
}

func TestNotesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	c := NewController(ctx, store, nil)
	id1 := c.AddNote(ctx, "first")
	id2 := c.AddNote(ctx, "second")
	require.NotEmpty(t, id1)
	require.NotEqual(t, id1, id2)

	c2 := NewController(ctx, store, nil)
	notes := c2.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Text)
	assert.Equal(t, "second", notes[1].Text)

	c2.RemoveNote(ctx, id1)
	notes = NewController(ctx, store, nil).Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "second", notes[0].Text)
}

func TestAddNote_BlankIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := NewController(ctx, newFakeStore(), nil)
	assert.Empty(t, c.AddNote(ctx, ""))
	assert.Empty(t, c.Notes())
}

func TestRemoveNote_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := NewController(ctx, newFakeStore(), nil)
	c.AddNote(ctx, "keep me")
	c.RemoveNote(ctx, "no-such-id")
	assert.Len(t, c.Notes(), 1)
}

func TestMalformedBlobsFallBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.blobs["tally:counter"] = []byte(`{"value": "not a number"`)
	store.blobs["tally:notes"] = []byte(`[]`) // wrong shape decodes to zero notes

	c := NewController(ctx, store, nil)
	assert.Equal(t, 0, c.Value())
	assert.Empty(t, c.Notes())
}

func TestSaveFailureKeepsWorkingInMemory(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.saveErr = errors.New("backend down")

	c := NewController(ctx, store, nil)
	c.Increment(ctx)
	c.AddNote(ctx, "still here")

	assert.Equal(t, 1, c.Value())
	assert.Len(t, c.Notes(), 1)
}
