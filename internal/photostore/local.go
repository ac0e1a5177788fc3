package photostore

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const thumbWidth = 320

// LocalStore keeps photos on the local filesystem, one directory per
// restaurant id. Uploads of decodable images get a webp thumbnail next
// to the original.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) namespaceDir(restaurantID uint) string {
	return filepath.Join(s.baseDir, strconv.FormatUint(uint64(restaurantID), 10))
}

func (s *LocalStore) CreateNamespace(restaurantID uint) error {
	return os.MkdirAll(s.namespaceDir(restaurantID), 0o755)
}

func (s *LocalStore) RemoveNamespace(restaurantID uint) error {
	return os.RemoveAll(s.namespaceDir(restaurantID))
}

func (s *LocalStore) Save(restaurantID uint, filename string, r io.Reader) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if _, ok := MIMETypes[ext]; !ok {
		return fmt.Errorf("file type %q is not allowed", ext)
	}

	dir := s.namespaceDir(restaurantID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, filepath.Base(filename)), data, 0o644); err != nil {
		return err
	}

	s.writeThumbnail(dir, filepath.Base(filename), data)
	return nil
}

// writeThumbnail is best effort: a photo that fails to decode keeps its
// original upload and simply has no thumbnail.
func (s *LocalStore) writeThumbnail(dir, filename string, data []byte) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		zap.L().Debug("skipping thumbnail, image not decodable",
			zap.String("filename", filename), zap.Error(err))
		return
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 {
		return
	}
	height := bounds.Dy() * thumbWidth / bounds.Dx()
	if height == 0 {
		height = 1
	}

	thumb := image.NewRGBA(image.Rect(0, 0, thumbWidth, height))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, bounds, draw.Over, nil)

	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.webp"
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		zap.L().Warn("failed to create thumbnail file", zap.Error(err))
		return
	}
	defer out.Close()

	if err := webp.Encode(out, thumb, &webp.Options{Quality: 80}); err != nil {
		zap.L().Warn("failed to encode thumbnail", zap.Error(err))
	}
}

func (s *LocalStore) Open(restaurantID uint, filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.namespaceDir(restaurantID), filepath.Base(filename)))
}
