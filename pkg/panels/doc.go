// Package panels models the form panels presentation layers render: a
// descriptor (title, description, ordered fields) bound to a generator
// function. Front ends collect Values for a panel's fields, call Generate and
// display the returned text unmodified.
//
// The builtin sub-package wires the four engine generators to descriptors
// read from the embedded OpenAPI document.
package panels
