// Package picperfectservice implements the Pic Perfect guessing game inside
// the challenge-arcade context.
//
// The module owns the challenge lifecycle state machine, the submission and
// vote ledger, the deception/discovery scoring pass, and leaderboard reads.
// Business rules live in the domain and application layers; persistence,
// transport, and event relay sit behind ports and adapters.
package picperfectservice
