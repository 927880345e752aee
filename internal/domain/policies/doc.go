// Package policies contains the domain entities and service contracts for
// analyzed insurance policy documents: metadata, extracted terms, risk
// scores, claim simulation results and the repository/store interfaces the
// infrastructure layer implements.
package policies
