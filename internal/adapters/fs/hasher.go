// Package fs implements filesystem-facing helpers for crit.
package fs

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
)

// schemaSalt changes whenever the report layout changes so stale cache entries miss.
const schemaSalt = "crit-report-v1"

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher fingerprints project definitions.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint computes the XXHash of everything in p that influences the report.
// Task order is significant since it decides tie-breaks.
func (h *Hasher) Fingerprint(p *domain.Project) string {
	hasher := xxhash.New()

	writeField(hasher, schemaSalt)
	h.hashProject(p, hasher)
	h.hashTasks(p.Tasks, hasher)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashProject hashes the project metadata.
func (h *Hasher) hashProject(p *domain.Project, hasher *xxhash.Digest) {
	writeField(hasher, p.Name)
	writeField(hasher, p.Description)
	writeField(hasher, p.DisplayUnit())
	writeField(hasher, strconv.Itoa(p.Deadline))
	writeField(hasher, strconv.FormatUint(math.Float64bits(p.Budget), 16))
	_, _ = hasher.Write([]byte{0}) // Section separator
}

// hashTasks hashes every task in input order.
func (h *Hasher) hashTasks(tasks []domain.TaskRecord, hasher *xxhash.Digest) {
	for _, t := range tasks {
		writeField(hasher, t.ID)
		writeField(hasher, t.Name)
		writeField(hasher, strconv.Itoa(t.Duration))
		writeField(hasher, t.Lead)
		for _, pred := range t.Predecessors {
			writeField(hasher, pred)
		}
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0}) // Separator
}
