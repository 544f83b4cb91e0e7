// Package wire defines the CBOR encoding of run documents.
//
// A run produces a stream of documents: one RunStart, one EventDescriptor
// per stream, an Event per acquisition point and a closing RunStop. On the
// wire each document travels inside an envelope carrying its kind:
//
//	{
//	  1: kind,   // uint8: 1=start, 2=descriptor, 3=event, 4=stop
//	  2: doc     // the document, string-keyed
//	}
//
// Documents use string keys so they stay readable by generic CBOR tools.
// Encoding is deterministic: the same document always produces the same
// bytes.
package wire
