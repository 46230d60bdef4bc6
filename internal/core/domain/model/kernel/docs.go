// Package kernel contains the shared value objects of the delivery domain:
// UUID identifiers, validated WGS84 geo points, and decimal-backed money.
//
// All kernel types are immutable value objects. Types whose zero value would be
// ambiguous (UUID, GeoPoint) embed a constructor guard and expose Validate so
// that objects bypassing their constructors are detected at the domain
// boundary rather than deep inside business logic.
package kernel
