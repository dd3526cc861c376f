package model

// Family is a named group of font files sharing a base typeface name.
// Fonts keep the order they were discovered in.
type Family struct {
	Name string
	ID   ID

	Fonts []*FontFile
}

func NewFamily(name string, id ID) *Family {
	return &Family{
		Name: name,
		ID:   id,
	}
}

func (f *Family) Add(font *FontFile) {
	font.Family = f.Name
	f.Fonts = append(f.Fonts, font)
}

func (f *Family) TotalSize() int64 {
	var result int64
	for _, font := range f.Fonts {
		result += font.Size
	}
	return result
}
