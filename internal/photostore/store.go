package photostore

import "io"

// MIMETypes maps the allowed photo extensions (without dot) to their
// content type. Anything else is rejected on upload and served as an
// octet stream on read.
var MIMETypes = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
}

// Store is a namespace-per-restaurant photo area. Namespaces are
// provisioned when a restaurant is created and removed when it is
// deleted.
type Store interface {
	CreateNamespace(restaurantID uint) error
	RemoveNamespace(restaurantID uint) error

	Save(restaurantID uint, filename string, r io.Reader) error
	Open(restaurantID uint, filename string) (io.ReadCloser, error)
}
