// Package treegen builds synthetic documentary trees that follow the naming
// scheme. It is used by the seed command and as a test fixture.
package treegen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options controls the shape of a generated tree.
type Options struct {
	Roots         int    // Root folders F1..Fn. Default: 3.
	Depth         int    // Maximum folder depth below a root. Default: 3.
	MaxSubfolders int    // Upper bound of subfolders per folder. Default: 3.
	MaxFiles      int    // Upper bound of files per folder. Default: 4.
	Archive       bool   // Add archive folders with non-compliant content.
	ArchiveMarker string // Default: "__old".
	UserCode      int    // User code length. Default: 3.
	Seed          uint64 // Zero picks a random seed.

	// Now bounds generated dates. Default: time.Now.
	Now func() time.Time
}

// Stats summarizes what Generate created.
type Stats struct {
	Roots   []string
	Folders int
	Files   int
}

// DefaultOptions returns the options used by the seed command.
func DefaultOptions() Options {
	return Options{
		Roots:         3,
		Depth:         3,
		MaxSubfolders: 3,
		MaxFiles:      4,
		Archive:       true,
		ArchiveMarker: "__old",
		UserCode:      3,
	}
}

type generator struct {
	opts  Options
	src   *rand.ChaCha8
	rng   *rand.Rand
	now   time.Time
	stats Stats
}

// Generate creates opts.Roots compliant root folders inside dir.
func Generate(dir string, opts Options) (Stats, error) {
	if opts.Roots < 1 {
		return Stats{}, errors.New("at least one root is required")
	}
	if opts.UserCode < 1 {
		opts.UserCode = 3
	}
	if opts.ArchiveMarker == "" {
		opts.ArchiveMarker = "__old"
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	g := &generator{
		opts: opts,
		src:  src,
		rng:  rand.New(src),
		now:  now,
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	for i := 1; i <= opts.Roots; i++ {
		code := fmt.Sprintf("F%d", i)
		root := filepath.Join(dir, FolderName(code, g.freeText()))
		if err := g.tree(root, code, 0); err != nil {
			return g.stats, err
		}
		g.stats.Roots = append(g.stats.Roots, root)
	}
	return g.stats, nil
}

func (g *generator) tree(path, code string, depth int) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", path, err)
	}
	g.stats.Folders++
	if err := g.files(path, code); err != nil {
		return err
	}
	if depth >= g.opts.Depth || g.opts.MaxSubfolders < 1 {
		return nil
	}
	n := g.rng.IntN(g.opts.MaxSubfolders + 1)
	for k := range min(n, 26) {
		sub := code + string(rune('a'+k))
		if err := g.tree(filepath.Join(path, FolderName(sub, g.freeText())), sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) files(path, code string) error {
	if g.opts.MaxFiles < 1 {
		return nil
	}
	n := g.rng.IntN(g.opts.MaxFiles + 1)
	for range n {
		name := FileName(code, g.date(), g.freeText(), g.userCode(), ".txt")
		if err := os.WriteFile(filepath.Join(path, name), []byte("101"), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		g.stats.Files++
	}
	if g.opts.Archive && n > 0 && g.rng.IntN(3) > 0 {
		return g.archive(path)
	}
	return nil
}

// archive fills an archive folder with names that would all be violations
// if they were validated.
func (g *generator) archive(path string) error {
	dir := filepath.Join(path, g.opts.ArchiveMarker)
	if err := os.MkdirAll(filepath.Join(dir, "not a coded folder"), 0o755); err != nil {
		return fmt.Errorf("failed to create archive folder: %w", err)
	}
	junk := []string{
		"old report.txt",
		FileName("F99", "991332", "bad-name", "abcd", ".txt"),
		".DS_Store",
	}
	for _, name := range junk {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("101"), 0o644); err != nil {
			return fmt.Errorf("failed to write archive file: %w", err)
		}
	}
	return nil
}

// freeText is one to three uuid segments joined by underscores. The uuid
// is drawn from the seeded source so a seed reproduces the same names.
func (g *generator) freeText() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		id = uuid.New()
	}
	segments := strings.Split(id.String(), "-")
	return strings.Join(segments[:1+g.rng.IntN(3)], "_")
}

// date is a day in the two years before now.
func (g *generator) date() string {
	return g.now.AddDate(0, 0, -1-g.rng.IntN(730)).Format("060102")
}

func (g *generator) userCode() string {
	b := make([]byte, g.opts.UserCode)
	for i := range b {
		b[i] = byte('A' + g.rng.IntN(26))
	}
	return string(b)
}

// FolderName formats a compliant folder name.
func FolderName(code, freeText string) string {
	return "_" + code + "_" + freeText
}

// FileName formats a file name from its parts.
func FileName(code, date, freeText, userCode, ext string) string {
	return code + "_" + date + "_" + freeText + "_" + userCode + ext
}
