package source

import (
	"fmt"
)

// Pos is a single byte offset inside a file. The zero Pos is "no location".
type Pos struct {
	File   FileID
	Offset uint32 // 1-based, 0 means invalid
}

// NoPos marks an absent location.
var NoPos = Pos{}

// IsValid reports whether p carries a location.
func (p Pos) IsValid() bool {
	return p.Offset != 0
}

// ByteOffset returns the 0-based byte offset of a valid position.
func (p Pos) ByteOffset() uint32 {
	if p.Offset == 0 {
		return 0
	}
	return p.Offset - 1
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "<no-pos>"
	}
	return fmt.Sprintf("%d:%d", p.File, p.ByteOffset())
}

// PosAt builds a position for a 0-based byte offset.
func PosAt(file FileID, off uint32) Pos {
	return Pos{File: file, Offset: off + 1}
}

type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NoSpan marks an absent range.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Begin returns the position of the first byte.
func (s Span) Begin() Pos {
	if s.Empty() {
		return NoPos
	}
	return PosAt(s.File, s.Start)
}

// Last returns the position of the last byte in the range.
func (s Span) Last() Pos {
	if s.Empty() {
		return NoPos
	}
	return PosAt(s.File, s.End-1)
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens s to include other when both live in the same file.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if s.Empty() {
		return other
	}
	if other.Empty() {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
