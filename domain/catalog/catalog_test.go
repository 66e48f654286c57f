package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCountsTotalEqualsSum(t *testing.T) {
	c := NewStatusCounts(ProductStatuses)
	for _, s := range []string{"active", "draft", "draft", "archived", "weird", ""} {
		c.Add(s)
	}

	assert.Equal(t, 6, c.Total)
	assert.Equal(t, c.Total, c.Sum())
	assert.Equal(t, 2, c.ByStatus["draft"])
	assert.Equal(t, 0, c.ByStatus["inactive"])
	assert.Equal(t, 2, c.ByStatus[OtherBucket])
}

func TestUserStatsBreakdownsSumToTotal(t *testing.T) {
	s := NewUserStats()
	s.Add("active", "admin")
	s.Add("pending", "cliente")
	s.Add("active", "superuser")

	sum := func(m map[string]int) int {
		n := 0
		for _, v := range m {
			n += v
		}
		return n
	}
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, s.Total, sum(s.ByStatus))
	assert.Equal(t, s.Total, sum(s.ByRole))
	assert.Equal(t, 1, s.ByRole[OtherBucket])
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	u := User{ID: "u-1", Email: "a@b.co", Password: "$2a$10$hash", Role: RoleAdmin, Status: UserActive}
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")
}

func TestSimpleProductSerializesOnlySetFields(t *testing.T) {
	p := Product{ID: "p-1", Name: "Widget", CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z"}
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 4)
	assert.Equal(t, "Widget", got["name"])
}

func TestPatchFields(t *testing.T) {
	name := "New"
	price := 9.5
	tags := []string{"a"}
	f := ProductPatch{Name: &name, Price: &price, Tags: &tags}.Fields()
	assert.Equal(t, map[string]interface{}{"name": "New", "price": 9.5, "tags": []string{"a"}}, f)

	email := "  Ana@Example.COM "
	uf := UserPatch{Email: &email}.Fields()
	assert.Equal(t, "ana@example.com", uf["email"])

	assert.Empty(t, LogoPatch{}.Fields())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleEjecutivo.IsValid())
	assert.False(t, Role("root").IsValid())
}
