package environment

import (
	"testing"

	"github.com/apscript-lang/apscript/objects"
	"github.com/stretchr/testify/assert"
)

func TestGet_FindsInParentChain(t *testing.T) {
	root := New(nil)
	root.Bind("x", &objects.Number{Value: 1})
	child := New(root)
	child.Bind("y", &objects.Number{Value: 2})

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, float32(1), v.(*objects.Number).Value)

	_, ok = root.Get("y")
	assert.False(t, ok)
}

func TestAssign_UpdatesExistingBindingInAncestor(t *testing.T) {
	root := New(nil)
	root.Bind("x", &objects.Number{Value: 1})
	child := New(root)

	child.Assign("x", &objects.Number{Value: 9})

	v, ok := root.Get("x")
	assert.True(t, ok)
	assert.Equal(t, float32(9), v.(*objects.Number).Value)
	_, ok = child.entries["x"]
	assert.False(t, ok, "assign should update the ancestor binding in place, not shadow it")
}

func TestAssign_CreatesAtCallerRootWhenUnbound(t *testing.T) {
	root := New(nil)
	child := New(root)

	child.Assign("z", &objects.Number{Value: 3})

	_, ok := root.Get("z")
	assert.False(t, ok, "a fresh binding is created on the env passed in, not the global root")
	v, ok := child.Get("z")
	assert.True(t, ok)
	assert.Equal(t, float32(3), v.(*objects.Number).Value)
}

func TestHas(t *testing.T) {
	root := New(nil)
	child := New(root)
	root.Bind("a", objects.VoidValue)

	assert.True(t, child.Has("a"))
	assert.False(t, child.Has("b"))
}
