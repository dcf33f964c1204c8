package yml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
Name: auto
timeout: 1.5
wait: 250ms
enabled: true
steps: [a, b]
`), &doc))
	root := (*Node)(&doc).Root()
	require.True(t, root.IsMapping())

	name, err := root.Lookup("name").String()
	require.NoError(t, err)
	assert.Equal(t, "auto", name)

	testCases := []struct {
		key    string
		expect time.Duration
	}{
		{key: "timeout", expect: 1500 * time.Millisecond},
		{key: "wait", expect: 250 * time.Millisecond},
	}
	for _, tc := range testCases {
		actual, err := root.Lookup(tc.key).Duration()
		require.NoError(t, err)
		assert.Equal(t, tc.expect, actual, tc.key)
	}

	enabled, err := root.Lookup("enabled").Bool()
	require.NoError(t, err)
	assert.True(t, enabled)

	_, err = root.Lookup("steps").Duration()
	assert.Error(t, err)
	assert.Nil(t, root.Lookup("missing"))

	var keys []string
	require.NoError(t, root.Pairs(func(key string, _ *Node) error {
		keys = append(keys, key)
		return nil
	}))
	assert.Equal(t, []string{"Name", "timeout", "wait", "enabled", "steps"}, keys)
	assert.Equal(t, []interface{}{"a", "b"}, root.Lookup("steps").Interface())
}
