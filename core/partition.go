package core

import (
	"fmt"
	"strings"

	"github.com/soniakeys/bits"
)

// Partition assigns every vertex 0..N-1 a label in {0,1}.
//
// The zero value is the empty partition (N = 0). Partition has value
// semantics for its length but shares its bit storage on copy: use Clone
// before mutating a partition that someone else holds.
type Partition struct {
	b bits.Bits
}

// NewPartition returns the all-zero partition over n vertices.
// A negative n is treated as zero.
func NewPartition(n int) Partition {
	if n < 0 {
		n = 0
	}

	return Partition{b: bits.New(n)}
}

// PartitionFromMask builds a partition over n vertices where bit i of mask is
// the label of vertex i. Bits at positions ≥ n are ignored.
//
// Errors: ErrNegativeOrder for n < 0, ErrMaskTooWide for n > MaskWidth.
func PartitionFromMask(mask uint64, n int) (Partition, error) {
	if n < 0 {
		return Partition{}, fmt.Errorf("n=%d: %w", n, ErrNegativeOrder)
	}
	if n > MaskWidth {
		return Partition{}, fmt.Errorf("n=%d: %w", n, ErrMaskTooWide)
	}
	p := NewPartition(n)
	if n > 0 {
		p.b.Bits[0] = mask & lowMask(n)
	}

	return p, nil
}

// PartitionFromLabels builds a partition from explicit labels, vertex 0 first.
// Every label must be 0 or 1.
func PartitionFromLabels(labels []int) (Partition, error) {
	p := NewPartition(len(labels))
	for i, l := range labels {
		switch l {
		case 0:
		case 1:
			p.b.SetBit(i, 1)
		default:
			return Partition{}, fmt.Errorf("label of vertex %d = %d: %w", i, l, ErrBadEntry)
		}
	}

	return p, nil
}

// lowMask returns a uint64 with the n lowest bits set (n in 0..64).
func lowMask(n int) uint64 {
	if n >= MaskWidth {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// Len returns the number of vertices covered by p.
func (p Partition) Len() int { return p.b.Num }

// Label returns the label (0 or 1) of vertex i; 0 when i is out of range.
func (p Partition) Label(i int) int {
	if i < 0 || i >= p.b.Num {
		return 0
	}

	return p.b.Bit(i)
}

// Set assigns label to vertex i; any non-zero label is stored as 1.
// Out-of-range indices are ignored.
func (p Partition) Set(i, label int) {
	if i < 0 || i >= p.b.Num {
		return
	}
	if label != 0 {
		label = 1
	}
	p.b.SetBit(i, label)
}

// Flip moves vertex i to the opposite side. Out-of-range indices are ignored.
func (p Partition) Flip(i int) {
	if i < 0 || i >= p.b.Num {
		return
	}
	p.b.SetBit(i, 1-p.b.Bit(i))
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	var c bits.Bits
	c.Set(p.b)

	return Partition{b: c}
}

// Complement returns a new partition with every label flipped.
// It induces the same cut as p.
func (p Partition) Complement() Partition {
	var c bits.Bits
	c.Not(p.b)
	if n := c.Num; n > 0 {
		// Bits above Num are undefined in bits.Bits; keep them clear so that
		// Mask and Equal stay exact.
		last := len(c.Bits) - 1
		c.Bits[last] &= lowMask(n - last*MaskWidth)
	}

	return Partition{b: c}
}

// Equal reports whether p and q cover the same vertices with the same labels.
func (p Partition) Equal(q Partition) bool {
	if p.b.Num != q.b.Num {
		return false
	}

	return p.b.Equal(q.b)
}

// Ones returns the number of vertices labelled 1.
func (p Partition) Ones() int { return p.b.OnesCount() }

// Side returns the ascending list of vertices carrying label.
func (p Partition) Side(label int) []int {
	out := make([]int, 0, p.b.Num)
	for i := 0; i < p.b.Num; i++ {
		if p.b.Bit(i) == label {
			out = append(out, i)
		}
	}

	return out
}

// Labels returns the labels as a fresh slice, vertex 0 first.
func (p Partition) Labels() []int {
	out := make([]int, p.b.Num)
	p.b.IterateOnes(func(i int) bool {
		out[i] = 1
		return true
	})

	return out
}

// Mask returns the partition as a uint64 with bit i = label(i).
//
// Errors: ErrMaskTooWide when Len() > MaskWidth.
func (p Partition) Mask() (uint64, error) {
	n := p.b.Num
	if n > MaskWidth {
		return 0, fmt.Errorf("n=%d: %w", n, ErrMaskTooWide)
	}
	if n == 0 {
		return 0, nil
	}

	return p.b.Bits[0] & lowMask(n), nil
}

// String renders the labels space-separated, vertex 0 first ("0 1 1 0").
func (p Partition) String() string {
	var sb strings.Builder
	sb.Grow(2 * p.b.Num)
	for i := 0; i < p.b.Num; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + p.b.Bit(i)))
	}

	return sb.String()
}
