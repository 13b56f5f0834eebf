package pledge

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

// MaxPledgeTextLen bounds the pledge statement attached to a photo.
const MaxPledgeTextLen = 200

var imageMIMEByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// PhotoEntry is one entry in the pledge photo gallery. Photo holds the image
// as a base64 data URI, the same shape the gallery has always stored.
type PhotoEntry struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Photo string `json:"photo"`
	At    int64  `json:"t"`
}

// AddPhoto reads an image file, validates its type by extension and appends
// a gallery entry for the named user.
func (s *Store) AddPhoto(ctx context.Context, name, text, imagePath string) (*PhotoEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: a pledge statement is required", account.ErrValidation)
	}
	if len(text) > MaxPledgeTextLen {
		return nil, fmt.Errorf("%w: pledge statement exceeds %d characters", account.ErrValidation, MaxPledgeTextLen)
	}
	mime, ok := imageMIMEByExt[strings.ToLower(filepath.Ext(imagePath))]
	if !ok {
		return nil, fmt.Errorf("%w: not an image file: %s", account.ErrValidation, imagePath)
	}
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	entry := PhotoEntry{
		Name:  name,
		Text:  text,
		Photo: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw),
		At:    s.now().UnixMilli(),
	}
	err = storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		var gallery []PhotoEntry
		if err := kv.GetJSON(ctx, storage.KeyPledgePhotos, &gallery); err != nil {
			return err
		}
		gallery = append(gallery, entry)
		return kv.SetJSON(ctx, storage.KeyPledgePhotos, gallery)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Gallery returns all photo pledges, most recent first.
func (s *Store) Gallery(ctx context.Context) ([]PhotoEntry, error) {
	var gallery []PhotoEntry
	if err := storage.NewKV(s.db).GetJSON(ctx, storage.KeyPledgePhotos, &gallery); err != nil {
		return nil, err
	}
	out := make([]PhotoEntry, 0, len(gallery))
	for i := len(gallery) - 1; i >= 0; i-- {
		out = append(out, gallery[i])
	}
	return out, nil
}
