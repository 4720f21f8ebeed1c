package ecss_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func TestErrorSentinelBridging(t *testing.T) {
	reg := ecss.NewRegistry()

	_, err := reg.AddComponent(ecss.NewEntity("ghost"), ecss.NewTransform("trs"))
	assert.ErrorIs(t, err, ecss.ErrUnknownEntity)

	var unknown *ecss.UnknownEntityError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ghost", unknown.Name)
	assert.Contains(t, err.Error(), `entity "ghost" not registered`)
}

func TestErrorBridgingThroughWrapping(t *testing.T) {
	e := ecss.NewEntity("parent")
	err := fmt.Errorf("linking scene: %w", e.Add(e))

	assert.ErrorIs(t, err, ecss.ErrInvalidHierarchy)
	assert.True(t, ecss.IsInvalidHierarchy(err))

	var hierarchy *ecss.InvalidHierarchyError
	assert.True(t, errors.As(err, &hierarchy))
	assert.Equal(t, "add", hierarchy.Op)
	assert.Equal(t, "parent", hierarchy.Child)
}

func TestErrorPredicates(t *testing.T) {
	reg := ecss.NewRegistry()
	e, _ := reg.CreateEntity(ecss.NewEntity("e"))

	_, dupErr := reg.CreateEntity(e)
	outErr := func() error { _, err := e.Child(3); return err }()
	unknownErr := reg.RemoveEntity(ecss.NewEntity("ghost"))
	cycleErr := e.Add(e)

	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"duplicate registration", dupErr, ecss.IsDuplicateRegistration},
		{"out of range", outErr, ecss.IsOutOfRange},
		{"unknown entity", unknownErr, ecss.IsUnknownEntity},
		{"invalid hierarchy", cycleErr, ecss.IsInvalidHierarchy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want(tt.err))
			assert.False(t, tt.want(nil))

			// Each predicate matches only its own kind.
			for _, other := range tests {
				if other.name != tt.name {
					assert.False(t, other.want(tt.err), "%s matched %s", other.name, tt.name)
				}
			}
		})
	}
}

func TestErrorPredicatesMatchBareSentinels(t *testing.T) {
	assert.True(t, ecss.IsUnknownEntity(ecss.ErrUnknownEntity))
	assert.True(t, ecss.IsDuplicateRegistration(ecss.ErrDuplicateRegistration))
	assert.True(t, ecss.IsInvalidHierarchy(ecss.ErrInvalidHierarchy))
	assert.True(t, ecss.IsOutOfRange(ecss.ErrOutOfRange))
}

func TestOutOfRangeErrorDetails(t *testing.T) {
	parent := ecss.NewEntity("parent")
	_ = parent.Add(ecss.NewEntity("only"))

	_, err := parent.Child(5)

	var out *ecss.OutOfRangeError
	assert.True(t, errors.As(err, &out))
	assert.Equal(t, 5, out.Index)
	assert.Equal(t, 1, out.Len)
	assert.Equal(t, "ecss: child index 5 out of range with length 1", err.Error())
}
