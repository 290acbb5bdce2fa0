package easel

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard transfer of board objects. Objects serialize to a small JSON
// envelope so a paste into another board (or another process) carries full
// object state. The codec is separated from the system clipboard calls so it
// can be tested without a display server.

// PasteOffset is how far pasted objects land from their source position.
const PasteOffset = 20

// clipboardEnvelope wraps copied objects so unrelated clipboard text is
// recognized and rejected on paste.
type clipboardEnvelope struct {
	Format  string    `json:"format"`
	Objects []*Object `json:"objects"`
}

const clipboardFormat = "easel/objects"

// EncodeClipboard serializes objects into the clipboard JSON envelope.
func EncodeClipboard(objs []*Object) (string, error) {
	env := clipboardEnvelope{Format: clipboardFormat, Objects: objs}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("easel: encode clipboard: %w", err)
	}
	return string(raw), nil
}

// DecodeClipboard parses the clipboard JSON envelope. Text that is not an
// object envelope returns an error.
func DecodeClipboard(text string) ([]*Object, error) {
	var env clipboardEnvelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("easel: decode clipboard: %w", err)
	}
	if env.Format != clipboardFormat {
		return nil, fmt.Errorf("easel: clipboard text is not %s", clipboardFormat)
	}
	return env.Objects, nil
}

// CopySelection writes deep copies of the selected objects to the system
// clipboard. No-op when nothing is selected.
func (e *Editor) CopySelection() error {
	sel := e.Selection.Objects()
	if len(sel) == 0 {
		return nil
	}
	clones := make([]*Object, len(sel))
	for i, o := range sel {
		clones[i] = o.Clone()
	}
	text, err := EncodeClipboard(clones)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

// Paste reads objects from the system clipboard, inserts them with fresh
// ids offset by PasteOffset, selects them, and records one paste action.
func (e *Editor) Paste() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("easel: read clipboard: %w", err)
	}
	objs, err := DecodeClipboard(text)
	if err != nil {
		return err
	}
	e.PasteObjects(objs)
	return nil
}

// PasteObjects inserts copies of the given objects with fresh ids, offset by
// PasteOffset, makes them the selection, and records one paste action. The
// callers' objects are not retained.
func (e *Editor) PasteObjects(objs []*Object) {
	if len(objs) == 0 {
		return
	}
	pasted := make([]*Object, 0, len(objs))
	for _, src := range objs {
		if src == nil {
			continue
		}
		o := src.Clone()
		o.ID = newObjectID()
		o.MoveBy(PasteOffset, PasteOffset)
		MigrateLegacyText(o)
		e.Board.Add(o)
		pasted = append(pasted, o)
	}
	if len(pasted) == 0 {
		return
	}
	e.Selection.ReplaceAll(pasted)
	clones := make([]*Object, len(pasted))
	for i, o := range pasted {
		clones[i] = o.Clone()
	}
	e.History.Push(Action{Type: ActionPasteObjects, Data: PasteObjectsData{Objects: clones}})
}
