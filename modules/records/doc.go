// Package records is the clinic-records module: owners, pets, and
// visits, each row belonging to exactly one clinic.
//
// It is also the reference wiring of the isolation layer. The router
// chains authn, tenant, and roles middleware so that by the time a
// handler runs the request is authenticated, authorized, and scoped to a
// clinic; the store is built on tenantdb, so none of its operations can
// reach another clinic's rows. Handlers contain no tenant logic at all;
// that is the point.
package records
