package retsu

// bitmask256 represents a set of up to 256 column IDs. It is the canonical
// identity key for row types and view types: two column lists that contain
// the same IDs, in any order and with any repetition, produce the same mask.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given column ID.
func (m *bitmask256) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// contains checks if all the bits set in the `sub` bitmask are also set in the
// receiver bitmask `m`. This is used to determine if a row type's column set
// is a superset of a view's columns.
//
// Parameters:
//   - sub: The bitmask representing the subset of columns to check for.
//
// Returns:
//   - true if the receiver contains all columns from the subset, false otherwise.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// maskOf builds the mask for a list of column IDs.
func maskOf(cols []ColumnID) bitmask256 {
	var m bitmask256
	for _, c := range cols {
		m.set(uint8(c))
	}
	return m
}
