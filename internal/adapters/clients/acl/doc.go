// Package acl is the anti-corruption layer between the console and the
// quotation API.
//
// The API's JSON representation and its error envelope stop here. Callers
// see only domain types and domain errors:
//
//   - 400 with field details becomes [domain.ValidationErrors]
//   - 404 becomes a [domain.NotFoundError] for the quotation
//   - any other failure status, an open circuit or a transport error
//     becomes a [domain.UnavailableError]
//
// Responses are checked before they are turned into domain records, so a
// malformed payload is reported as the API being unavailable rather than
// surfacing as a half-populated record.
package acl
