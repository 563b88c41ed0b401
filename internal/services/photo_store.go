package services

import (
	"fmt"
	"os"
	"path/filepath"

	"omahaestates/internal/utils"

	"github.com/gabriel-vasile/mimetype"
)

// PhotoUpload is one uploaded image payload, in the order the client
// submitted it.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoStore writes listing photos to the media root, namespaced as
// listing_photos/<listing_id>/<filename>.
type PhotoStore struct {
	Root string
}

func NewPhotoStore(root string) *PhotoStore {
	return &PhotoStore{Root: root}
}

// Save writes the payload to disk and returns the media-relative path plus
// the content type, sniffed from the bytes when the upload didn't carry one.
func (p *PhotoStore) Save(listingID uint, up PhotoUpload) (string, string, error) {
	name := filepath.Base(up.Filename)
	dir := filepath.Join(p.Root, "listing_photos", fmt.Sprint(listingID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create photo dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), up.Data, 0644); err != nil {
		return "", "", fmt.Errorf("write photo: %w", err)
	}

	mime := up.ContentType
	if mime == "" {
		mime = mimetype.Detect(up.Data).String()
	}

	return fmt.Sprintf("listing_photos/%d/%s", listingID, name), utils.Truncate(mime, 50), nil
}

// Remove deletes one stored photo by its media-relative path.
func (p *PhotoStore) Remove(rel string) error {
	return os.Remove(filepath.Join(p.Root, filepath.FromSlash(rel)))
}

// RemoveListing deletes every stored photo for a listing.
func (p *PhotoStore) RemoveListing(listingID uint) error {
	return os.RemoveAll(filepath.Join(p.Root, "listing_photos", fmt.Sprint(listingID)))
}
