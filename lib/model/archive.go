package model

import (
	"time"
)

// Archive is the result of compressing one family. Created by the archive
// builder after a successful build; not changed afterwards.
type Archive struct {
	FamilyName string
	ID         ID

	Path             string
	FileCount        int
	UncompressedSize int64
	CompressedSize   int64

	BuiltAt time.Time
}

func NewArchive(familyName string, id ID) *Archive {
	return &Archive{
		FamilyName: familyName,
		ID:         id,
	}
}
