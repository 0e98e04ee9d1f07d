// Package skos maps SKOS triple graphs to Go objects and back.
//
// The package is built around three entity types: Concept, ConceptScheme and
// Collection, each identified by a URI. Relations between concepts maintain
// their inverses automatically: adding B to A.Broader also records A in
// B.Narrower, and the symmetric relations exposed through Related and
// Synonyms stay visible from both endpoints.
//
// RDFLoader turns a graph.Graph into entities, optionally resolving external
// references over HTTP up to a configurable depth. RDFBuilder is the inverse
// and serializes an object graph back into triples.
//
// This package is not a reasoner. It maps the SKOS core vocabulary to
// structs and will not enforce or infer anything beyond the statements it is
// given.
package skos
