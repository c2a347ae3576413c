// Package directory implements a small multi-tenant directory service:
// users and organisations behind a query/mutation API gated by token
// authentication.
//
// Identity flow:
//   - Auther issues signed JWTs on sign-up and sign-in. TokenService owns
//     the signing key and TTL; both are injected at construction and never
//     read from process globals.
//   - RequestIdentity resolves the caller once per request. A missing token
//     yields no identity (valid for public operations); a present but
//     expired or tampered token fails the request with "Your session
//     expired." before any handler runs.
//   - Guards compose in front of handlers with Combine. The first failing
//     guard short-circuits, so protected handler bodies never observe an
//     unauthenticated request.
//
// Storage:
//   - Users and Organisations are narrow store interfaces backed by Bun.
//     The users table enforces email uniqueness; violations surface as a
//     conflict error rather than a raw driver error.
package directory
