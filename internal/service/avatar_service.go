package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
	"time"

	"golang.org/x/image/draw"

	_ "image/gif"

	_ "golang.org/x/image/webp"
)

var (
	// ErrUploadInFlight is returned while a previous upload has not finished.
	ErrUploadInFlight = errors.New("an avatar upload is already in progress")
	// ErrNotAnImage is returned when the uploaded bytes do not decode as a
	// supported image format.
	ErrNotAnImage = errors.New("uploaded file is not a supported image")
)

// avatarMaxBytes caps the accepted upload size.
const avatarMaxBytes = 10 << 20

// avatarMaxDim is the bounding box avatars are scaled down to fit.
const avatarMaxDim = 512

// AvatarService uploads a profile image to storage and resolves its public
// URL. Only one upload may be in flight per user, uploads from other users
// are unaffected; on any failure nothing partial is kept and the caller's
// avatar field stays unchanged.
type AvatarService struct {
	storage Storage
	mu      sync.Mutex
	busy    map[string]bool
	now     func() time.Time
}

// NewAvatarService constructs an AvatarService on top of a Storage.
func NewAvatarService(storage Storage) *AvatarService {
	return &AvatarService{storage: storage, busy: make(map[string]bool), now: time.Now}
}

// Busy reports whether an upload is currently outstanding for the user.
func (s *AvatarService) Busy(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[userID]
}

func (s *AvatarService) beginUpload(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[userID] {
		return false
	}
	s.busy[userID] = true
	return true
}

func (s *AvatarService) endUpload(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, userID)
}

// Upload reads the image, scales it down to fit the avatar bounding box,
// stores it under avatars/{userID}-{timestamp}.{ext} and returns the public
// URL of the stored object.
func (s *AvatarService) Upload(userID string, r io.Reader) (string, error) {
	if !s.beginUpload(userID) {
		return "", ErrUploadInFlight
	}
	defer s.endUpload(userID)

	data, err := io.ReadAll(io.LimitReader(r, avatarMaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > avatarMaxBytes {
		return "", fmt.Errorf("avatar exceeds %d bytes", avatarMaxBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}

	img = scaleDown(img, avatarMaxDim)

	var buf bytes.Buffer
	ext := ".jpg"
	if format == "png" {
		ext = ".png"
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	path := fmt.Sprintf("avatars/%s-%d%s", userID, s.now().UnixMilli(), ext)
	if err := s.storage.Put(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("store avatar: %w", err)
	}

	return s.storage.PublicURL(path), nil
}

// scaleDown resizes img to fit within max by max, keeping the aspect
// ratio. Images already inside the box pass through untouched.
func scaleDown(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return img
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
