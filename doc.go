// Package stockpile tracks perishable-goods inventory with two append-only
// ledgers: one for purchases (bought lots) and one for sales. Stock levels,
// expiry status and the revenue/cost/profit figures are never stored; they
// are derived from the ledgers at query time.
//
// The package is organized around a few small engines:
//
//   - the filter engine evaluates "field<op>value" predicates against ledger
//     records, with granularity-aware date comparisons (see the date package),
//   - the reconciliation engine computes available and expired stock on a
//     given day by subtracting matched sales from bought lots,
//   - the allocation planner turns a sell request into sold-ledger entries,
//     depleting the soonest-to-expire lot first,
//   - the aggregation engine sums quantity times price over filtered subsets.
//
// All operations load the ledgers fully into memory, compute, and append.
// Nothing is ever edited or deleted in place.
package stockpile
