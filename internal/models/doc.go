// Package models defines the core domain records for tripsplit.
//
// # Models
//
//   - User: registered account that owns trips
//   - Trip: a group event with its own currency, members, expenses and settlements
//   - Member: a person within one trip; balances are keyed by member ID
//   - Expense: an amount paid by one member and shared equally by its participants
//   - Settlement: a recorded real-world payment between two members
//
// # Design Principles
//
//  1. Records are plain data; business rules live in the service layer and
//     the calculator package.
//  2. Relationships use ID strings instead of pointers to avoid circular
//     references.
//  3. Members belong to exactly one trip. A member referenced by any expense
//     (as payer or participant) can no longer be renamed or deleted.
//  4. Settlements are append-only; a completed settlement is never mutated.
package models
