package groupers

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
)

type Grouper struct {
	console consoles.Console
}

type Options struct {
	// Suffixes is the style vocabulary stripped from file names when
	// deriving family names. Empty means DefaultSuffixes.
	Suffixes []string
}

// DefaultSuffixes are the weight/style markers recognized at the end of font
// file names.
func DefaultSuffixes() []string {
	return []string{
		"Bold", "Italic", "Light", "Regular", "Medium", "Thin", "Black", "Oblique",
		"Condensed", "Extended", "Narrow", "Wide", "Semi", "Extra", "Ultra", "Demi", "Heavy",
	}
}

func NewGrouper(console consoles.Console) *Grouper {
	return &Grouper{
		console: console,
	}
}

// Group clusters font files into families, in first-seen order. Every file
// lands in exactly one family: files whose derived name comes out empty fall
// back to their full stem.
func (g *Grouper) Group(files *model.FontFiles, opts *Options) (*model.Families, error) {
	if opts == nil {
		opts = &Options{}
	}

	deriver := NewNameDeriver(opts.Suffixes)

	result := model.NewFamilies()

	for _, file := range files.List() {
		family := result.GetOrCreate(deriver.FamilyName(file.Stem()))
		family.Add(file)
	}

	g.console.Printf("Found %v font families\n", result.Len())

	return result, nil
}

// NameDeriver turns a font file stem into a family name. It is a pure
// lookup-table transform so the vocabulary can be swapped in tests and
// through configuration.
type NameDeriver struct {
	suffixes []string
	titler   cases.Caser
}

func NewNameDeriver(suffixes []string) *NameDeriver {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes()
	}

	suffixes = append([]string(nil), suffixes...)

	// Longest first, so Extended wins over Extra+ded style overlaps
	sort.Slice(suffixes, func(i, j int) bool {
		return len(suffixes[i]) > len(suffixes[j])
	})

	return &NameDeriver{
		suffixes: suffixes,
		titler:   cases.Title(language.Und, cases.NoLower),
	}
}

func (d *NameDeriver) FamilyName(stem string) string {
	name := d.normalize(d.stripSuffixes(stem))

	if name == "" {
		name = d.normalize(stem)
	}
	if name == "" {
		name = stem
	}

	return normalizeNerdFont(name)
}

func (d *NameDeriver) stripSuffixes(name string) string {
	for {
		trimmed := strings.TrimRight(name, "-_ ")

		stripped := trimmed
		lower := strings.ToLower(trimmed)

		for _, suffix := range d.suffixes {
			if strings.HasSuffix(lower, strings.ToLower(suffix)) {
				stripped = trimmed[:len(trimmed)-len(suffix)]
				break
			}
		}

		if stripped == name {
			return name
		}

		name = stripped
	}
}

func (d *NameDeriver) normalize(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	return d.titler.String(name)
}

// Fonts patched for Nerd Fonts symbols append qualifiers after "Nerd Font"
// (Mono, Propo). Those belong to the same family.
func normalizeNerdFont(name string) string {
	lower := strings.ToLower(name)

	idx := strings.Index(lower, "nerd font")
	if idx < 0 || strings.HasSuffix(lower, "nerd font") {
		return name
	}

	base := strings.TrimSpace(name[:idx])
	if base == "" {
		return name
	}

	return base + " Nerd Font"
}
