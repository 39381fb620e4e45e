// Package shell provides the imperative shell around the library domain:
// conversion between domain events and storable events, the Journal which records every change
// of a core.Library into an event store, and the construction of the process logger.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
