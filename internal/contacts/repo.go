package contacts

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxFindDistance is the largest edit distance, relative to the length of the
// compared name, that Find accepts.
const maxFindDistance = 0.5

// Repo is an ordered, read-only collection of contacts.
type Repo struct {
	contacts []Contact
}

// NewRepo returns a repository over contacts.
func NewRepo(contacts []Contact) *Repo {
	return &Repo{contacts: contacts}
}

// Len returns the number of contacts.
func (r *Repo) Len() int {
	return len(r.contacts)
}

// At returns the contact at index.
func (r *Repo) At(index int) (Contact, bool) {
	if index < 0 || index >= len(r.contacts) {
		return Contact{}, false
	}
	return r.contacts[index], true
}

// Find returns the index of the contact whose name best matches query. Names
// starting with the query win; otherwise the closest name by edit distance is
// chosen if it is close enough.
func (r *Repo) Find(query string) (int, bool) {
	query = normalize(query)
	if query == "" {
		return -1, false
	}

	for i, c := range r.contacts {
		if strings.HasPrefix(normalize(c.FirstName), query) || strings.HasPrefix(normalize(c.Name()), query) {
			return i, true
		}
	}

	best, bestScore := -1, maxFindDistance
	for i, c := range r.contacts {
		for _, name := range []string{normalize(c.FirstName), normalize(c.LastName), normalize(c.Name())} {
			if name == "" {
				continue
			}
			dist := levenshtein.ComputeDistance(query, name)
			score := float64(dist) / float64(max(len(query), len(name)))
			if score < bestScore {
				best, bestScore = i, score
			}
		}
	}
	return best, best >= 0
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
