package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinOrdersBeforeEverything(t *testing.T) {
	min := Min()
	assert.Equal(t, New(0, 0, 0), min)
	assert.True(t, min.Less(New(0, 0, 1)))
	assert.True(t, min.Less(New(1, 0, 0)))
	assert.True(t, min.Less(Max()))
}

func TestOrderingTotality(t *testing.T) {
	ordered := []Number{
		Min(),
		New(0, 0, 1),
		New(0, 1, 0),
		New(1, 0, 0),
		New(1, 2, 163),
		New(1, 2, 873),
		New(260205, 0, 0),
		New(260205, 1, 1),
		New(261231, 999, 999),
		Max(),
	}

	for i, a := range ordered {
		assert.Equal(t, 0, a.Compare(a), "%s.Compare(itself)", a)
		assert.True(t, a.AtLeast(a))
		for _, b := range ordered[i+1:] {
			assert.True(t, a.Less(b), "%s < %s", a, b)
			assert.False(t, b.Less(a), "%s !< %s", b, a)
			assert.Equal(t, -1, a.Compare(b))
			assert.Equal(t, 1, b.Compare(a))
			assert.True(t, b.AtLeast(a))
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.2.873", New(1, 2, 873).String())
	assert.Equal(t, "0.0.0", Min().String())
}

func TestUint64Packing(t *testing.T) {
	assert.Equal(t, uint64(1_002_873), New(1, 2, 873).Uint64())
	assert.Equal(t, uint64(0), Min().Uint64())
	assert.Equal(t, uint64(999_999_999), New(999, 999, 999).Uint64())

	// Single components land in their own decimal slot.
	assert.Equal(t, uint64(1_000_000), New(1, 0, 0).Uint64())
	assert.Equal(t, uint64(1_000), New(0, 1, 0).Uint64())
	assert.Equal(t, uint64(1), New(0, 0, 1).Uint64())

	// Calver majors keep chronological ordering in packed form.
	assert.Less(t, New(260101, 0, 0).Uint64(), New(260205, 0, 0).Uint64())
	assert.Less(t, New(1, 3, 0).Uint64(), New(260205, 0, 0).Uint64())
}

func TestUint64Roundtrip(t *testing.T) {
	for _, n := range []Number{
		Min(),
		New(1, 0, 0),
		New(0, 1, 0),
		New(0, 0, 1),
		New(1, 2, 873),
		New(10, 20, 30),
		New(999, 999, 999),
		New(260205, 0, 0),
		New(260205, 1, 0),
		New(261231, 999, 999),
	} {
		assert.Equal(t, n, FromUint64(n.Uint64()), "roundtrip of %s", n)
	}
}

func TestUint64OverflowIsLossy(t *testing.T) {
	// minor >= 1000 bleeds into major
	v := New(260205, 1000, 0)
	recovered := FromUint64(v.Uint64())
	assert.NotEqual(t, v, recovered)
	assert.Equal(t, New(260206, 0, 0), recovered)

	// patch >= 1000 bleeds into minor
	v = New(260205, 0, 1000)
	recovered = FromUint64(v.Uint64())
	assert.NotEqual(t, v, recovered)
	assert.Equal(t, New(260205, 1, 0), recovered)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Number
		wantErr bool
	}{
		{in: "1.2.873", want: New(1, 2, 873)},
		{in: "v1.2.873", want: New(1, 2, 873)},
		{in: "260205.0.0", want: New(260205, 0, 0)},
		{in: "0.0.0", want: Min()},
		{in: "1.2", wantErr: true},
		{in: "1.2.3.4", wantErr: true},
		{in: "1.2.3-rc.1", wantErr: true},
		{in: "1.2.3+sha.abcdef", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSemverBridge(t *testing.T) {
	n := New(260205, 1, 7)
	sv := n.Semver()
	assert.Equal(t, "260205.1.7", sv.String())
	assert.Equal(t, n, FromSemver(sv))
}
