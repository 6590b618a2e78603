package spin

// Symbol identifies one of the K distinct machine icons. It carries no
// behavior; equality is by identifier only. Rendering and audio map
// identifiers to their presentation separately
type Symbol int

// Valid reports whether the identifier falls inside the machine's
// symbol set
func (s Symbol) Valid(symbolCount int) bool {
	return s >= 0 && int(s) < symbolCount
}
