package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoStoreSavesUnderListingDirectory(t *testing.T) {
	root := t.TempDir()
	store := NewPhotoStore(root)

	path, mime, err := store.Save(7, PhotoUpload{
		Filename:    "front.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "listing_photos/7/front.jpg", path)
	assert.Equal(t, "image/jpeg", mime)

	data, err := os.ReadFile(filepath.Join(root, "listing_photos", "7", "front.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestPhotoStoreSniffsMissingContentType(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	_, mime, err := store.Save(1, PhotoUpload{Filename: "a.png", Data: pngMagic})
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestPhotoStoreStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store := NewPhotoStore(root)

	path, _, err := store.Save(3, PhotoUpload{
		Filename:    "../../evil.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("x"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "listing_photos/3/evil.jpg", path)

	_, err = os.Stat(filepath.Join(root, "listing_photos", "3", "evil.jpg"))
	assert.NoError(t, err)
}

func TestPhotoStoreRemoveListing(t *testing.T) {
	root := t.TempDir()
	store := NewPhotoStore(root)

	_, _, err := store.Save(5, PhotoUpload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")})
	assert.NoError(t, err)

	assert.NoError(t, store.RemoveListing(5))
	_, err = os.Stat(filepath.Join(root, "listing_photos", "5"))
	assert.True(t, os.IsNotExist(err))

	// Removing a listing that never had photos is a no-op.
	assert.NoError(t, store.RemoveListing(99))
}
