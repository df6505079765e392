// Package storage uploads vehicle images to the hosted object store over its
// plain REST surface and hands back public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Bucket talks to one bucket of the object store. Object names are ULIDs so
// uploads never collide with each other or with previously stored files.
type Bucket struct {
	baseURL string
	bucket  string
	apiKey  string
	client  *http.Client
	entropy io.Reader
}

func NewBucket(baseURL, bucket, apiKey string) *Bucket {
	return &Bucket{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Upload stores one image and returns its public URL. The original file name
// only contributes its extension.
func (b *Bucket) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	object := ulid.MustNew(ulid.Timestamp(time.Now()), b.entropy).String()
	if ext := path.Ext(filename); ext != "" {
		object += ext
	}
	objectPath := "vehicles/" + object

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", b.baseURL, b.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("Content-Type", contentTypeFor(filename))

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("image upload rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return b.PublicURL(objectPath), nil
}

// PublicURL returns the unauthenticated download URL for an object.
func (b *Bucket) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", b.baseURL, b.bucket, objectPath)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
