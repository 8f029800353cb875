// Package labels provides consistent resource labeling for created clusters.
//
// Every cluster carries a small fixed label set for audit and cost
// attribution: the owner identity, a team tag, and a creator tag. Labels
// follow a builder pattern so callers can layer extra labels from
// configuration without mutating the defaults.
package labels
