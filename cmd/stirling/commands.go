package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvstirling/bijection"
	"github.com/katalvlaran/lvstirling/internal/logging"
	"github.com/katalvlaran/lvstirling/notation"
	"github.com/katalvlaran/lvstirling/stirling"
	"github.com/katalvlaran/lvstirling/typeb"
)

// errVerifyFailed is returned by verify when any check disagrees.
var errVerifyFailed = errors.New("verification failed")

// ListCmd prints permutations on [n]_k.
type ListCmd struct {
	N   int  `short:"n" required:"" help:"Order n"`
	K   int  `short:"k" default:"2" help:"Copies of each value (flattened only)"`
	All bool `help:"List every Stirling permutation on [n]_2, not only flattened ones"`
}

// Run prints the generated permutations, one per line.
func (c *ListCmd) Run(env *Env) error {
	perms, err := generate(c.N, c.K, c.All)
	if err != nil {
		return err
	}
	for _, p := range perms {
		fmt.Fprintln(env.Out, p)
	}

	return nil
}

// CountCmd tabulates permutations by run count.
type CountCmd struct {
	N   int  `short:"n" required:"" help:"Order n"`
	K   int  `short:"k" default:"2" help:"Copies of each value (flattened only)"`
	All bool `help:"Count every Stirling permutation on [n]_2, not only flattened ones"`
}

// Run prints the permutation counts grouped by number of runs.
func (c *CountCmd) Run(env *Env) error {
	perms, err := generate(c.N, c.K, c.All)
	if err != nil {
		return err
	}

	groups := stirling.ByRunCount(perms)
	rows := make([][]string, 0, len(groups)+1)
	for _, runs := range slices.Sorted(maps.Keys(groups)) {
		rows = append(rows, []string{strconv.Itoa(runs), humanize.Comma(int64(len(groups[runs])))})
	}
	rows = append(rows, []string{"total", humanize.Comma(int64(len(perms)))})
	fmt.Fprintln(env.Out, renderTable([]string{"runs", "words"}, rows))

	return nil
}

// TableCmd prints the count of flattened k-Stirling permutations.
type TableCmd struct {
	MaxN int `name:"max-n" default:"5" help:"Largest order n"`
	MaxK int `name:"max-k" default:"5" help:"Largest multiplicity k"`
}

// Run prints the flattened k-Stirling counts for every n and k.
func (c *TableCmd) Run(env *Env) error {
	if c.MaxK < 2 {
		return fmt.Errorf("table: --max-k must be at least 2, got %d", c.MaxK)
	}

	headers := []string{`n\k`}
	for k := 2; k <= c.MaxK; k++ {
		headers = append(headers, strconv.Itoa(k))
	}

	var rows [][]string
	for n := 1; n <= c.MaxN; n++ {
		row := []string{strconv.Itoa(n)}
		for k := 2; k <= c.MaxK; k++ {
			perms, err := stirling.Flat(n, stirling.WithMultiplicity(k))
			if err != nil {
				return err
			}
			row = append(row, humanize.Comma(int64(len(perms))))
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(env.Out, renderTable(headers, rows))

	return nil
}

// PartitionsCmd prints every Type-B partition of {-n..n}.
type PartitionsCmd struct {
	N int `short:"n" required:"" help:"Order n"`
}

// Run prints each Type-B partition with its reduced form and image.
func (c *PartitionsCmd) Run(env *Env) error {
	start := time.Now()
	parts, err := typeb.Enumerate(c.N)
	if err != nil {
		return err
	}
	logging.Enumerated("typeb", c.N, len(parts), time.Since(start))

	for _, p := range parts {
		reduced := typeb.Reduce(p)
		perm, err := bijection.StirlingPermutation(reduced)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s -> %s -> %s\n", p, reduced, perm)
	}

	return nil
}

// VerifyCmd checks the generators and the bijection for n = 1..MaxN.
type VerifyCmd struct {
	MaxN int `name:"max-n" default:"5" help:"Largest order n to verify"`
}

// Run compares both generators and runs the round trips for n = 1..MaxN.
func (c *VerifyCmd) Run(env *Env) error {
	levels, err := stirling.FlatLevels(c.MaxN)
	if err != nil {
		return err
	}

	failed := false
	var rows [][]string
	for n, flat := range levels {
		if n == 0 {
			continue
		}
		brute, err := stirling.FlatBrute(n)
		if err != nil {
			return err
		}
		parts, err := typeb.Enumerate(n - 1)
		if err != nil {
			return err
		}

		digest := stirling.Digest(flat)
		generatorsAgree := digest == stirling.Digest(brute)
		if !generatorsAgree {
			logging.Mismatch("generators", n, fmt.Sprintf("flat=%d brute=%d", len(flat), len(brute)))
		}
		forward := forwardRoundTrip(n, flat)
		backward := backwardRoundTrip(n, parts, digest)
		failed = failed || !generatorsAgree || !forward || !backward

		rows = append(rows, []string{
			strconv.Itoa(n),
			humanize.Comma(int64(len(flat))),
			humanize.Comma(int64(len(brute))),
			humanize.Comma(int64(len(parts))),
			hex.EncodeToString(digest[:8]),
			status(generatorsAgree && forward && backward),
		})
	}
	fmt.Fprintln(env.Out, renderTable([]string{"n", "flat", "brute", "type-b(n-1)", "digest", "status"}, rows))

	if failed {
		return errVerifyFailed
	}

	return nil
}

// forwardRoundTrip checks perm → partition → reduced → perm for every perm.
func forwardRoundTrip(n int, perms []stirling.Permutation) bool {
	ok := true
	for _, p := range perms {
		part, err := bijection.TypeBPartition(p)
		if err != nil {
			logging.Mismatch("forward", n, err.Error())
			ok = false

			continue
		}
		back, err := bijection.StirlingPermutation(typeb.Reduce(part))
		if err != nil || back.String() != p.String() {
			logging.Mismatch("forward", n, fmt.Sprintf("%s -> %s", p, back))
			ok = false
		}
	}

	return ok
}

// backwardRoundTrip checks that the images of the partitions of order n-1
// are exactly the flattened permutations on [n]_2, and that mapping those
// images back yields the same partitions.
func backwardRoundTrip(n int, parts []typeb.Partition, want [32]byte) bool {
	built := make([]stirling.Permutation, 0, len(parts))
	for _, p := range parts {
		perm, err := bijection.StirlingPermutation(typeb.Reduce(p))
		if err != nil {
			logging.Mismatch("backward", n, err.Error())
			return false
		}
		built = append(built, perm)
	}
	if stirling.Digest(built) != want {
		logging.Mismatch("backward", n, "image of Type-B partitions differs from Flat")
		return false
	}

	rebuilt := make([]typeb.Partition, 0, len(built))
	for _, perm := range built {
		part, err := bijection.TypeBPartition(perm)
		if err != nil {
			logging.Mismatch("backward", n, err.Error())
			return false
		}
		rebuilt = append(rebuilt, part)
	}
	if typeb.Digest(rebuilt) != typeb.Digest(parts) {
		logging.Mismatch("backward", n, "partitions of the image differ from the enumeration")
		return false
	}

	return true
}

// ReduceCmd reduces one rendered permutation.
type ReduceCmd struct {
	Perm string `arg:"" help:"Flattened Stirling permutation, e.g. 113322 or 1(10)(10)1"`
}

// Run prints the reduced form and Type-B partition of one permutation.
func (c *ReduceCmd) Run(env *Env) error {
	p, err := notation.ParsePermutation(c.Perm)
	if err != nil {
		return err
	}
	blocks, err := bijection.ReducedForm(p)
	if err != nil {
		return err
	}
	part, err := bijection.TypeBPartition(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "blocks:    %s\npartition: %s\nreduced:   %s\n", blocks, part, typeb.Reduce(part))

	return nil
}

// BuildCmd builds the permutation for one rendered reduced representation.
type BuildCmd struct {
	Reduced string `arg:"" help:"Reduced Type-B partition, e.g. '0|(-2)1'"`
}

// Run prints the permutation built from one reduced representation.
func (c *BuildCmd) Run(env *Env) error {
	r, err := notation.ParseReduced(c.Reduced)
	if err != nil {
		return err
	}
	p, err := bijection.StirlingPermutation(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, p)

	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(env *Env) error {
	fmt.Fprintf(env.Out, "stirling %s\n", version)

	return nil
}

// generate returns flattened permutations on [n]_k, or with all set every
// Stirling permutation on [n]_2.
func generate(n, k int, all bool) ([]stirling.Permutation, error) {
	if k < 1 {
		return nil, fmt.Errorf("-k must be at least 1, got %d", k)
	}

	start := time.Now()
	if all {
		if k != stirling.DefaultMultiplicity {
			return nil, fmt.Errorf("--all supports only k = %d", stirling.DefaultMultiplicity)
		}
		perms, err := stirling.All(n)
		if err != nil {
			return nil, err
		}
		logging.Enumerated("stirling", n, len(perms), time.Since(start))

		return perms, nil
	}

	levels, err := stirling.FlatLevels(n, stirling.WithMultiplicity(k))
	if err != nil {
		return nil, err
	}
	var perms []stirling.Permutation
	for i, level := range levels {
		logging.LevelBuilt("flat", i, len(level), time.Since(start))
		perms = level
	}
	logging.Enumerated("flat", n, len(perms), time.Since(start), "k", k)

	return perms, nil
}

func status(ok bool) string {
	if ok {
		return "ok"
	}

	return "FAIL"
}
