package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangobridge/tangobridge/pkg/acquire"
	"github.com/tangobridge/tangobridge/pkg/config"
	"github.com/tangobridge/tangobridge/pkg/devsim"
	"github.com/tangobridge/tangobridge/pkg/tango"
)

var simTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSimClient(t *testing.T) (*tango.Client, *devsim.Device) {
	t.Helper()
	db := devsim.NewDatabase()
	dev := devsim.NewTangoTest(devsim.DefaultTestName, func() time.Time { return simTime })
	require.NoError(t, db.Add(dev))
	return tango.NewClient(db), dev
}

func TestFromConfigDefault(t *testing.T) {
	ctx := context.Background()
	client, _ := newSimClient(t)

	reg, err := FromConfig(ctx, client, config.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"tango_attr", "some_name", "another_name", "device_tango"}, reg.Names())
	assert.Equal(t, 4, reg.Len())

	attr, err := reg.Get("tango_attr")
	require.NoError(t, err)
	assert.Equal(t, "double_scalar", attr.Name())

	desc, err := attr.Describe(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, desc["double_scalar"].Shape)
	assert.Equal(t, "number", desc["double_scalar"].Dtype)

	// Both composite flavours resolve to the same attributes.
	for _, name := range []string{"some_name", "another_name"} {
		obj, err := reg.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, obj.Name())

		reading, err := obj.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"double_scalar", "float_scalar"}, reading.Keys())
		assert.Equal(t, float64(simTime.Unix()), reading["float_scalar"].Timestamp)

		composite := obj.(*Composite)
		dou, err := composite.Component("dou")
		require.NoError(t, err)
		assert.Equal(t, "dou", dou.(*Attribute).AttrName())
		assert.Same(t, composite, dou.(*Attribute).Parent())
	}

	devObj, err := reg.Get("device_tango")
	require.NoError(t, err)
	assert.Equal(t, "sys:tg_test:1", devObj.Name())

	reading, err := devObj.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ampli", "double_scalar"}, reading.Keys())
	assert.Equal(t, 1.0, reading["ampli"].Value)

	devDesc, err := devObj.Describe(ctx)
	require.NoError(t, err)
	assert.Len(t, devDesc, len(devObj.(*Device).Attributes()))
	assert.Equal(t, []int{devsim.SpectrumMaxLen}, devDesc["double_spectrum"].Shape)
	assert.Equal(t, []int{devsim.ImageMaxDim, devsim.ImageMaxDim}, devDesc["double_image"].Shape)

	_, err = reg.Get("nope")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestBuildPredefinedSpecs(t *testing.T) {
	ctx := context.Background()
	client, _ := newSimClient(t)

	attrNames, err := TangoTestAttrNames.Build(ctx, client, "sys/tg_test/1", "some_name")
	require.NoError(t, err)
	fullNames, err := TangoTestFullNames.Build(ctx, client, "", "another_name")
	require.NoError(t, err)

	descA, err := attrNames.Describe(ctx)
	require.NoError(t, err)
	descB, err := fullNames.Describe(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(descA, descB); diff != "" {
		t.Errorf("descriptions differ (-attrNames +fullNames):\n%s", diff)
	}

	// A relative suffix without its prefix is not a valid attribute name.
	_, err = TangoTestAttrNames.Build(ctx, client, "", "broken")
	assert.ErrorIs(t, err, tango.ErrInvalidName)
}

func TestCompositeSpecKindDefaults(t *testing.T) {
	ctx := context.Background()
	client, _ := newSimClient(t)

	spec := CompositeSpec{Components: []ComponentSpec{
		{Attr: "dou", Suffix: "/double_scalar"},
		{Attr: "amp", Suffix: "/ampli", Omitted: true},
		{Attr: "flo", Suffix: "/float_scalar", Kind: acquire.KindConfig},
	}}
	c, err := spec.Build(ctx, client, "sys/tg_test/1", "defaults")
	require.NoError(t, err)

	kinds := make(map[string]acquire.Kind)
	for _, comp := range c.Components() {
		kinds[comp.Attr] = comp.Kind
	}
	want := map[string]acquire.Kind{
		"dou": acquire.KindNormal,
		"amp": acquire.KindOmitted,
		"flo": acquire.KindConfig,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("component kinds mismatch (-want +got):\n%s", diff)
	}

	reading, err := c.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"double_scalar"}, reading.Keys())

	// An explicit "omitted" in the config keeps the component out of reads.
	reg, err := FromConfig(ctx, client, &config.Config{
		Composites: []config.CompositeConfig{{
			Name:   "cfg",
			Prefix: "sys/tg_test/1",
			Components: []config.ComponentConfig{
				{Attr: "dou", Suffix: "/double_scalar"},
				{Attr: "amp", Suffix: "/ampli", Kind: "omitted"},
			},
		}},
	})
	require.NoError(t, err)
	obj, err := reg.Get("cfg")
	require.NoError(t, err)
	reading, err = obj.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"double_scalar"}, reading.Keys())
}

func TestFromConfigErrors(t *testing.T) {
	ctx := context.Background()
	client, dev := newSimClient(t)

	_, err := FromConfig(ctx, client, &config.Config{
		Devices: []config.DeviceConfig{{Name: "d", Device: "sys/tg_test/2"}},
	})
	assert.ErrorIs(t, err, tango.ErrDeviceNotFound)

	_, err = FromConfig(ctx, client, &config.Config{
		Attributes: []config.AttributeConfig{{Name: "a", Tango: "sys/tg_test/1/ampli", Kind: "weird"}},
	})
	assert.Error(t, err)

	reg := NewRegistry()
	require.NoError(t, reg.Add("x", newStub("x", 1)))
	assert.ErrorIs(t, reg.Add("x", newStub("x", 1)), ErrDuplicateObject)

	// Reads against an offline device surface the client error.
	attr, err := NewAttribute(ctx, client, "sys/tg_test/1/double_scalar")
	require.NoError(t, err)
	dev.SetOnline(false)
	_, err = attr.Read(ctx)
	assert.ErrorIs(t, err, tango.ErrDeviceUnreachable)
}

func TestRegistryAll(t *testing.T) {
	reg := NewRegistry()
	a, b := newStub("a", 1), newStub("b", 2)
	require.NoError(t, reg.Add("b", b))
	require.NoError(t, reg.Add("a", a))

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, []acquire.Readable{b, a}, all)
}

func TestSimulatedMixedCaseNames(t *testing.T) {
	ctx := context.Background()
	client, _ := newSimClient(t)

	subset := []string{"Double_Scalar", "state"}
	dev, err := NewDevice(ctx, client, "sys/tg_test/1", subset)
	require.NoError(t, err)

	reading, err := dev.Read(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, subset, reading.Keys())

	attr, err := NewAttribute(ctx, client, "sys/tg_test/1/State")
	require.NoError(t, err)
	assert.Equal(t, "State", attr.Name())

	desc, err := dev.Describe(ctx)
	require.NoError(t, err)
	_, ok := desc[attr.Name()]
	assert.True(t, ok, "device description has no %s key", attr.Name())
}
