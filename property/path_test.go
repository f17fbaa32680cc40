package property_test

import (
	"slices"
	"testing"

	"github.com/0xalexb/hjarta-conf/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(path *property.Segment) []string {
	var result []string

	for segment := range path.All() {
		result = append(result, segment.Name())
	}

	return result
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, property.Parse(""))
}

func TestParse_SimpleProperty(t *testing.T) {
	t.Parallel()

	simple := property.Parse("simpleProperty")
	require.NotNil(t, simple)

	assert.Equal(t, "simpleProperty", simple.Name())
	assert.False(t, simple.HasNext())
	assert.Nil(t, simple.Next())
	assert.Equal(t, 1, simple.Len())
}

func TestParse_MultiSegment(t *testing.T) {
	t.Parallel()

	segmented := property.Parse("segment.segment2.segment3")
	require.NotNil(t, segmented)

	assert.Equal(t, "segment", segmented.Name())
	require.True(t, segmented.HasNext())
	assert.Equal(t, "segment2", segmented.Next().Name())
	require.True(t, segmented.Next().HasNext())
	assert.Equal(t, "segment3", segmented.Next().Next().Name())
	assert.False(t, segmented.Next().Next().HasNext())
}

func TestParse_Segments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "index after field",
			path: "first.second[1231]",
			want: []string{"first", "second", "[1231]"},
		},
		{
			name: "consecutive indices",
			path: "second[1][2]",
			want: []string{"second", "[1]", "[2]"},
		},
		{
			name: "leading index chunk",
			path: "a[0][1].c",
			want: []string{"a", "[0]", "[1]", "c"},
		},
		{
			name: "complex chain",
			path: "first.second[1234][5678].key.third.fourth[123].nonsense[123]",
			want: []string{
				"first", "second", "[1234]", "[5678]", "key",
				"third", "fourth", "[123]", "nonsense", "[123]",
			},
		},
		{
			name: "bracket only",
			path: "[4]",
			want: []string{"[4]"},
		},
		{
			name: "empty chunks are dropped",
			path: "a..b.",
			want: []string{"a", "b"},
		},
		{
			name: "unterminated bracket is field text",
			path: "list[3",
			want: []string{"list[3"},
		},
		{
			name: "empty brackets are field text",
			path: "list[].x",
			want: []string{"list[]", "x"},
		},
		{
			name: "text between groups",
			path: "a[1]b[2]",
			want: []string{"a", "[1]", "b", "[2]"},
		},
		{
			name: "trailing text kept",
			path: "a[1]tail",
			want: []string{"a", "[1]", "tail"},
		},
		{
			name: "parenthesis form is plain text",
			path: "map(key).x",
			want: []string{"map(key)", "x"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path := property.Parse(testCase.path)
			require.NotNil(t, path)
			assert.Equal(t, testCase.want, names(path))
		})
	}
}

func TestSegment_Index(t *testing.T) {
	t.Parallel()

	path := property.Parse("list[12]")
	require.NotNil(t, path)

	index := path.Next()
	require.NotNil(t, index)

	assert.False(t, path.IsIndex())
	assert.Equal(t, "list", path.Index())
	assert.True(t, index.IsIndex())
	assert.Equal(t, "12", index.Index())
}

func TestSegment_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "vars.list[6][1]", property.Parse("vars.list[6][1]").String())
	assert.Equal(t, "a.b", property.Parse("a..b").String())
}

func TestSegment_AllStopsEarly(t *testing.T) {
	t.Parallel()

	var visited []string

	for segment := range property.Parse("a.b.c.d").All() {
		visited = append(visited, segment.Name())
		if segment.Name() == "b" {
			break
		}
	}

	assert.True(t, slices.Equal([]string{"a", "b"}, visited))
}
