// Package roles maps verified-identity claims to canonical route
// authorities.
//
// Credentials arrive with roles in two shapes, a list claim ("roles")
// and a singular claim ("role"), and the mapper takes the union of
// both, normalised to the ROLE_ convention. The mapping is a pure
// function of the identity; it has no side effects and never fails:
// claim shapes it cannot read simply contribute no authorities.
package roles
