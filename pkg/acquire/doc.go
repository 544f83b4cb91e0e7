// Package acquire defines the read/describe contract between acquisition
// objects and the run engine.
//
// # Readings and Descriptions
//
// Every object the engine can acquire from implements Readable:
//
//	Read(ctx)                  -> Reading     {name: {value, timestamp}}
//	Describe(ctx)              -> Description {name: {shape, dtype, source, unit}}
//	ReadConfiguration(ctx)     -> Reading
//	DescribeConfiguration(ctx) -> Description
//
// A Reading is produced fresh on every call and belongs to the caller.
// A Description is derived from metadata, not from data.
//
// # Shapes
//
// Shapes are []int and never nil: a scalar is [], a spectrum [x] and an
// image [x, y]. Higher dimensionality is not representable.
//
// # Kinds
//
// Kind flags decide which children of a composite contribute to which
// call. KindNormal children are read by Read, KindConfig children by
// ReadConfiguration. KindHinted implies KindNormal.
package acquire
