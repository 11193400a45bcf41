package listing

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ResultSet is the subset of a Dataset selected by the last filter or search.
// Membership is a bitmap of Dataset positions, so iteration always follows
// Dataset order and a ResultSet is a subsequence of its Dataset by construction.
type ResultSet struct {
	dataset   Dataset
	members   *roaring.Bitmap
	positions []uint32
}

// newResultSet freezes members into a ResultSet over ds.
func newResultSet(ds Dataset, members *roaring.Bitmap) ResultSet {
	members.RunOptimize()
	return ResultSet{
		dataset:   ds,
		members:   members,
		positions: members.ToArray(),
	}
}

// All returns a ResultSet containing every record of ds.
func All(ds Dataset) ResultSet {
	members := roaring.New()
	if len(ds) > 0 {
		members.AddRange(0, uint64(len(ds)))
	}
	return newResultSet(ds, members)
}

// selectWhere returns the records of ds for which keep reports true.
func selectWhere(ds Dataset, keep func(Record) bool) ResultSet {
	members := roaring.New()
	for i, rec := range ds {
		if keep(rec) {
			members.Add(uint32(i)) //nolint:gosec // Dataset positions fit in uint32.
		}
	}
	return newResultSet(ds, members)
}

// Len returns the number of records in the result set.
func (rs ResultSet) Len() int {
	return len(rs.positions)
}

// At returns the i-th record of the result set.
func (rs ResultSet) At(i int) Record {
	return rs.dataset[rs.positions[i]]
}

// Records returns the result set's records in Dataset order.
func (rs ResultSet) Records() []Record {
	out := make([]Record, len(rs.positions))
	for i, pos := range rs.positions {
		out[i] = rs.dataset[pos]
	}
	return out
}

// Positions returns the Dataset index of each member, ascending.
func (rs ResultSet) Positions() []int {
	out := make([]int, len(rs.positions))
	for i, pos := range rs.positions {
		out[i] = int(pos)
	}
	return out
}

// Contains reports whether the Dataset record at pos is a member.
func (rs ResultSet) Contains(pos int) bool {
	if rs.members == nil || pos < 0 {
		return false
	}
	return rs.members.Contains(uint32(pos)) //nolint:gosec // Bounds checked above.
}

// Equal reports whether both result sets select the same Dataset positions.
func (rs ResultSet) Equal(other ResultSet) bool {
	if rs.members == nil || other.members == nil {
		return rs.Len() == 0 && other.Len() == 0
	}
	return rs.members.Equals(other.members)
}
