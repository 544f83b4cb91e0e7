// Package adapter exposes control-system proxies through the acquire.Readable
// contract.
//
// Attribute wraps a single attribute proxy and Device wraps a device proxy.
// Composite groups several adapters under one name. Every call is forwarded
// to the proxy and the result reshaped into readings and descriptions.
// Proxy errors are returned unmodified.
package adapter
