package converters

import (
	"fmt"
	"strings"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// FormatPartition renders p as space-separated labels, vertex 0 first.
func FormatPartition(p core.Partition) string { return p.String() }

// ParsePartition accepts space-separated labels ("0 1 1 0") or a contiguous
// bit string ("0110"), vertex 0 first.
func ParsePartition(s string) (core.Partition, error) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) == 1 && len(s) > 1 {
		fields = strings.Split(s, "")
	}

	labels := make([]int, len(fields))
	for i, f := range fields {
		switch f {
		case "0":
		case "1":
			labels[i] = 1
		default:
			return core.Partition{}, fmt.Errorf("label %d = %q: %w", i, f, ErrMalformed)
		}
	}

	return core.PartitionFromLabels(labels)
}
