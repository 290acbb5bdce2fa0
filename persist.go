package easel

import (
	"encoding/json"
	"fmt"
)

// Board persistence. Objects round-trip through a small versioned JSON
// document; legacy flat text records migrate to styled runs on load.

const boardDocVersion = 1

// boardDoc is the on-disk board document.
type boardDoc struct {
	Version int       `json:"version"`
	Objects []*Object `json:"objects"`
}

// ExportJSON serializes every board object, in insertion order, into the
// versioned board document.
func (b *Board) ExportJSON() ([]byte, error) {
	doc := boardDoc{Version: boardDocVersion, Objects: b.objects}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("easel: export board: %w", err)
	}
	return raw, nil
}

// ImportJSON parses a board document and bulk-loads its objects, migrating
// legacy text records. Objects whose ids are already present are skipped.
func (b *Board) ImportJSON(data []byte) error {
	var doc boardDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("easel: parse board document: %w", err)
	}
	if doc.Version > boardDocVersion {
		return fmt.Errorf("easel: board document version %d is newer than supported %d", doc.Version, boardDocVersion)
	}
	b.Load(doc.Objects)
	return nil
}
