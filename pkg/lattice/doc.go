// Package lattice provides types, interfaces, and helpers for working with
// the Lattice resource API.
//
// # Overview
//
// The lattice package defines the domain types (App, AppObject, Connection,
// Configuration) and the interfaces for resource-oriented clients
// (AppsClient, ObjectsClient, ConnectionsClient, ConfigurationsClient). A
// concrete implementation of these clients is provided by the latticeclient
// package, which wires configuration, transport, and authorization. Most
// consumers should import latticeclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/lattice-io/lattice-client/pkg/lattice"
//	  "github.com/lattice-io/lattice-client/pkg/latticeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := latticeclient.New(&lattice.Config{AccessToken: "token"})
//	  if err != nil { log.Fatal(err) }
//
//	  apps, err := cli.Apps().List(ctx, lattice.NewListOptions().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = apps
//	}
//
// # Queries and pagination
//
// Use ListOptions to express list options. Page size and next token are sent
// as pagination[pageSize] and pagination[nextToken] query parameters; filters
// are sent as filter[<name>]. List responses carry the items together with
// the pagination metadata echoed by the server, so a caller pages through a
// collection by feeding each response's NextToken back into the next request.
//
// # Schemas
//
// Every resource has two parallel representations: an internal shape with
// native *url.URL and time.Time fields, and a wire payload with string URLs
// and ISO-8601 timestamps. ParseApp, ParseAppObject, ParseConnection, and
// ParseConfiguration validate a wire payload and convert it to the internal
// shape; the Payload methods perform the lossless reverse mapping.
//
// # Errors
//
// API failures are represented by APIError and ValidationError. Every public
// client operation either returns a validated typed payload or an error from
// this taxonomy; nothing is retried or substituted with defaults.
package lattice
