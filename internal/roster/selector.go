package roster

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultIterationCap bounds how many hash indices a selection may consume
	DefaultIterationCap = 1 << 20

	// DefaultHashBatch is how many digests are computed ahead of the append step
	DefaultHashBatch = 64
)

// Options tunes a Selector. Zero values fall back to the defaults.
type Options struct {
	IterationCap int // Maximum hash indices tried before giving up
	HashBatch    int // Digests computed concurrently per round
}

// Selector picks rosters from a fixed candidate list
type Selector struct {
	candidates   *Candidates
	iterationCap int
	hashBatch    int
}

// NewSelector creates a selector over the given candidates
func NewSelector(candidates *Candidates, opts Options) *Selector {
	s := &Selector{
		candidates:   candidates,
		iterationCap: opts.IterationCap,
		hashBatch:    opts.HashBatch,
	}
	if s.iterationCap <= 0 {
		s.iterationCap = DefaultIterationCap
	}
	if s.hashBatch <= 0 {
		s.hashBatch = DefaultHashBatch
	}
	return s
}

// Candidates returns the list this selector draws from
func (s *Selector) Candidates() *Candidates {
	return s.candidates
}

// SelectRoster picks count heroes for key using default options.
func SelectRoster(key string, candidates *Candidates, count int) ([]Record, error) {
	return NewSelector(candidates, Options{}).Select(context.Background(), key, count)
}

// IndexDigest returns the big-endian uint32 read from the first four bytes of
// SHA-256(key + decimal(i)).
func IndexDigest(key string, i int) uint32 {
	sum := sha256.Sum256([]byte(key + strconv.Itoa(i)))
	return binary.BigEndian.Uint32(sum[:4])
}

// Select derives count distinct heroes for key.
//
// For each index i starting at 0 the candidate at IndexDigest(key, i) modulo
// the list length is appended unless a hero with the same Name is already in
// the roster. Digests are computed a batch at a time in parallel, but the
// append decisions are always made in increasing index order.
func (s *Selector) Select(ctx context.Context, key string, count int) ([]Record, error) {
	n := s.candidates.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: candidate list is empty", ErrInvalidArgument)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: roster size must be at least 1, got %d", ErrInvalidArgument, count)
	}
	if distinct := s.candidates.DistinctNames(); count > distinct {
		return nil, fmt.Errorf("%w: roster size %d unsatisfiable with %d distinct heroes",
			ErrInvalidArgument, count, distinct)
	}

	roster := make([]Record, 0, count)
	seen := make(map[string]struct{}, count)
	digests := make([]uint32, s.hashBatch)

	for base := 0; base < s.iterationCap; base += s.hashBatch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size := min(s.hashBatch, s.iterationCap-base)
		if err := hashRange(ctx, key, base, digests[:size]); err != nil {
			return nil, err
		}

		for _, num := range digests[:size] {
			hero := s.candidates.At(int(uint64(num) % uint64(n)))
			if _, dup := seen[hero.Name]; dup {
				continue
			}
			seen[hero.Name] = struct{}{}
			roster = append(roster, hero)
			if len(roster) == count {
				return roster, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %d indices produced %d of %d heroes",
		ErrSafetyCapExceeded, s.iterationCap, len(roster), count)
}

// hashRange fills out[j] with IndexDigest(key, base+j), splitting the work
// across the available CPUs.
func hashRange(ctx context.Context, key string, base int, out []uint32) error {
	workers := min(runtime.GOMAXPROCS(0), len(out))
	if workers <= 1 {
		for j := range out {
			out[j] = IndexDigest(key, base+j)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(out) + workers - 1) / workers
	for start := 0; start < len(out); start += chunk {
		start := start
		end := min(start+chunk, len(out))
		g.Go(func() error {
			for j := start; j < end; j++ {
				if j%16 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				out[j] = IndexDigest(key, base+j)
			}
			return nil
		})
	}
	return g.Wait()
}
