package upload

import (
	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
)

// Partition distributes customers across n agents round-robin: the
// customer at original index i lands in partition i mod n. The function
// is pure - same inputs always yield the same partitions, and relative
// order within every partition follows the original file order. Partition
// sizes differ by at most one, larger ones come first.
func Partition(customers []model.CustomerRecord, n int) ([][]model.CustomerRecord, error) {
	if n < 1 {
		return nil, apperrors.ErrNoActiveAgents
	}

	parts := make([][]model.CustomerRecord, n)
	for i := range parts {
		parts[i] = make([]model.CustomerRecord, 0, (len(customers)+n-1-i)/n)
	}

	for i, c := range customers {
		parts[i%n] = append(parts[i%n], c)
	}
	return parts, nil
}
