package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"  TECH ", "tech"},
		{"Señal", "senal"},
		{"Ökologie", "okologie"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCollectDedupesAndSorts(t *testing.T) {
	got := Collect([]string{"Café", "cafe", "TECH"})
	assert.Equal(t, []string{"cafe", "tech"}, got)
}

func TestCollectIsIdempotent(t *testing.T) {
	once := Collect([]string{"Zeta", "álpha", " beta", "ALPHA"}, []string{"", "Beta"})
	assert.Equal(t, once, Collect(once))
}

func TestCollectEmptyIsNotNil(t *testing.T) {
	got := Collect()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Collect(nil, []string{" ", ""})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHash(t *testing.T) {
	assert.Equal(t, int32(0), Hash(""))
	assert.Equal(t, int32(97), Hash("a"))
	assert.Equal(t, int32(3105), Hash("ab"))
}

func TestHashWrapsLikeInt32(t *testing.T) {
	long := "the quick brown fox jumps over the lazy dog"
	h := Hash(long)
	assert.Equal(t, h, Hash(long))
	assert.NotPanics(t, func() { Color(long) })
}

func TestColor(t *testing.T) {
	assert.Equal(t, "orange", Color("a"))
	assert.Equal(t, "indigo", Color("ab"))
	assert.Equal(t, Palette[0], Color(""))
	assert.Contains(t, Palette, Color("tecnología"))
}

func TestColorsPreservesOrder(t *testing.T) {
	got := Colors([]string{"b", "a"})
	assert.Equal(t, []TagColor{{Tag: "b", Color: Color("b")}, {Tag: "a", Color: "orange"}}, got)
}
