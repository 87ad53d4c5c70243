package semtree_test

import (
	"reflect"
	"testing"

	"github.com/npillmayer/semtree"
	"github.com/npillmayer/semtree/sdom"
	"github.com/stretchr/testify/assert"
)

func TestDefDerivesTagAndVoidness(t *testing.T) {
	def := semtree.Def(newCallout)
	assert.Equal(t, "callout", def.TagName())
	assert.False(t, def.IsVoid(), "callout embeds a container, must not be void")

	iconDef := semtree.Def(newIcon)
	assert.Equal(t, "icon", iconDef.TagName())
	assert.True(t, iconDef.IsVoid(), "icon embeds a void element, must be void")
}

func TestRegistryLookup(t *testing.T) {
	reg := semtree.NewRegistry(semtree.Def(newCallout))
	def, ok := reg.Lookup("callout")
	assert.True(t, ok)
	assert.Equal(t, "callout", def.TagName())

	_, ok = reg.Lookup("unknown")
	assert.False(t, ok)

	// lookup normalizes case, consistent with the catalog
	_, ok = reg.Lookup("CALLOUT")
	assert.True(t, ok)
}

// otherCallout claims the same tag as callout.
type otherCallout struct {
	*sdom.ContainerElement
}

func newOtherCallout() otherCallout {
	return otherCallout{sdom.BlockContainer("callout")}
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	reg := semtree.NewRegistry()
	reg.Register(semtree.Def(newCallout))
	reg.Register(semtree.Def(newOtherCallout))

	def, ok := reg.Lookup("callout")
	assert.True(t, ok)
	instance := def.New()
	_, isOther := instance.(otherCallout)
	assert.True(t, isOther, "expected lookup to return the later registration")

	// the displaced kind loses its reverse mapping
	_, ok = reg.TagNameFor(reflect.TypeOf(newCallout()))
	assert.False(t, ok)
	tag, ok := reg.TagNameFor(reflect.TypeOf(newOtherCallout()))
	assert.True(t, ok)
	assert.Equal(t, "callout", tag)
}

func TestIndependentRegistries(t *testing.T) {
	regA := semtree.NewRegistry(semtree.Def(newCallout))
	regB := semtree.NewRegistry()
	_, okA := regA.Lookup("callout")
	_, okB := regB.Lookup("callout")
	assert.True(t, okA)
	assert.False(t, okB, "registries must not share state")
}
