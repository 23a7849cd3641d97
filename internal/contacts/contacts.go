package contacts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

//go:embed contacts.json
var bundled []byte

// Contact is one person of the address book.
type Contact struct {
	ID           string
	FirstName    string
	LastName     string
	Title        string
	Avatar       string
	Introduction string
}

// Name returns the full name.
func (c Contact) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Initials returns the upper-case initials of the name.
func (c Contact) Initials() string {
	var b strings.Builder
	for _, part := range []string{c.FirstName, c.LastName} {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

type record struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Title          string `json:"title"`
	AvatarFilename string `json:"avatar_filename"`
	Introduction   string `json:"introduction"`
}

// Load reads contacts from the JSON file at path. An empty path loads the
// bundled contacts.
func Load(path string, densityScale float64) ([]Contact, error) {
	if path == "" {
		return Parse(bundled, densityScale)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}
	return Parse(data, densityScale)
}

// Parse decodes a JSON array of contacts. Avatar file names are resolved to
// the variant matching densityScale.
func Parse(data []byte, densityScale float64) ([]Contact, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	contacts := make([]Contact, 0, len(records))
	for i, r := range records {
		contacts = append(contacts, Contact{
			ID:           contactID(i, r),
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Title:        r.Title,
			Avatar:       AvatarVariant(r.AvatarFilename, densityScale),
			Introduction: r.Introduction,
		})
	}
	return contacts, nil
}

// contactID derives a stable ID so reloading the same file yields the same
// IDs.
func contactID(index int, r record) string {
	key := fmt.Sprintf("contact:%d:%s:%s", index, r.FirstName, r.LastName)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// AvatarVariant returns the image name for the given density scale:
// name@3x.png for scale 3, name@2x.png for scale 2 and name.png otherwise.
func AvatarVariant(file string, densityScale float64) string {
	if file == "" {
		return ""
	}
	name := strings.TrimSuffix(file, filepath.Ext(file))
	switch int(math.Round(densityScale)) {
	case 3:
		return name + "@3x.png"
	case 2:
		return name + "@2x.png"
	default:
		return name + ".png"
	}
}
